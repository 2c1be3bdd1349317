// Package logging holds the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

const prefix = "coinshower: "

// Log is the shared logger. It writes to stderr until Init redirects it.
var Log = log.New(os.Stderr, prefix, log.LstdFlags|log.Lshortfile)

// Init sends log output to stderr and, when path is set, also appends it
// to that file. The returned file must be closed by the caller.
func Init(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	Log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	Log.Println("logging to", path)

	return logFile, nil
}

// Warnf logs a non-fatal problem.
func Warnf(format string, args ...interface{}) {
	Log.Output(2, "warn: "+fmt.Sprintf(format, args...))
}
