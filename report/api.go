package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// InitReporter replaces the global reporter with one writing to out at the
// given log level.  This also restarts the run timer.
func InitReporter(out io.Writer, loglevel int) {
	rep = newReporter(out, loglevel)
}

// SetLogLevel changes the log level of the global reporter.
func SetLogLevel(loglevel int) {
	rep.m.Lock()
	rep.LogLevel = loglevel
	rep.m.Unlock()
}

// -----------------------------------------------------------------------------

// ReportInfo reports a progress message.  Only shown at the verbose log level.
func ReportInfo(tag, msg string) {
	rep.write(LogLevelVerbose, formatTagged(InfoStyleBG, InfoColorFG, tag, msg))
}

// ReportStatus reports a driver status line such as the build file being
// compiled.  Shown at the default log level.
func ReportStatus(msg string) {
	rep.write(LogLevelWarn, msg+"\n")
}

// ReportWarning reports a non-fatal problem.
func ReportWarning(tag, msg string) {
	rep.write(LogLevelWarn, formatTagged(WarnStyleBG, WarnColorFG, tag, msg))
}

// ReportError reports a standard Go error under the given tag.
func ReportError(tag string, err error) {
	rep.write(LogLevelError, formatTagged(ErrorStyleBG, ErrorColorFG, tag, err.Error()))
}

// ReportFatal reports an unrecoverable error in the driver's environment or
// invocation.  It does not exit: the caller returns the failure status.
func ReportFatal(msg string, args ...interface{}) {
	rep.write(LogLevelError, formatFatal(fmt.Sprintf(msg, args...)))
}

// ReportUsage prints usage text.  Usage is always shown unless output is
// silenced since the user explicitly asked for it or misused the command.
func ReportUsage(text string) {
	rep.write(LogLevelError, strings.TrimRight(text, "\n")+"\n")
}

// ReportBanner prints the driver banner.  Shown at the default log level.
func ReportBanner() {
	rep.write(LogLevelWarn, formatBanner())
}

// ReportFinished reports the concluding message along with the elapsed time
// since the reporter was initialized.
func ReportFinished(success bool) {
	rep.write(LogLevelVerbose, formatFinished(success, time.Since(rep.startTime)))
}
