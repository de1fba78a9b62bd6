package main

import (
	"os"
	"runtime"

	"lsc/cmd"
	"lsc/report"
)

func init() {
	// native delegates must be called from the thread that started the driver
	runtime.LockOSThread()
}

func main() {
	report.InitReporter(os.Stdout, report.LogLevelWarn)
	os.Exit(cmd.NewDriver().Run(os.Args[1:]))
}
