package report

import (
	"io"
	"os"
	"sync"
	"time"
)

// reporter is responsible for writing all driver output at the configured log
// level.
type reporter struct {
	// out is where every message is written.
	out io.Writer

	LogLevel int

	// startTime is used to report the elapsed time of the run.
	startTime time.Time

	m *sync.Mutex
}

// Enumeration of the different log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarn           // errors, warnings and status lines (DEFAULT)
	LogLevelVerbose        // errors, warnings, progress and timing information
)

func newReporter(out io.Writer, loglevel int) *reporter {
	return &reporter{
		out:       out,
		LogLevel:  loglevel,
		startTime: time.Now(),
		m:         &sync.Mutex{},
	}
}

// write prints a fully formatted message if the reporter's log level is at
// least minLevel.
func (r *reporter) write(minLevel int, text string) {
	r.m.Lock()
	defer r.m.Unlock()

	if r.LogLevel >= minLevel {
		io.WriteString(r.out, text)
	}
}

// rep is the shared process reporter.  It writes to stdout until InitReporter
// is called.
var rep = newReporter(os.Stdout, LogLevelWarn)
