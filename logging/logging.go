// Package logging owns the process logger. Debug runs log to a rotating
// file next to the terminal UI; without --debug everything is discarded
// so the alternate screen stays clean.
package logging

import (
	"io"
	"log"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.Mutex
	logger  = log.New(io.Discard, "", log.LstdFlags)
	rotator *lumberjack.Logger
)

// Get returns the process logger. Discards until EnableDebug is called.
func Get() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// EnableDebug routes the logger to a rotating file.
func EnableDebug(path string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if rotator != nil {
		return logger
	}
	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	logger = log.New(rotator, "", log.LstdFlags|log.Lmicroseconds)
	return logger
}

// Close flushes and closes the rotating file, if debug was enabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if rotator != nil {
		rotator.Close()
		rotator = nil
		logger = log.New(io.Discard, "", log.LstdFlags)
	}
}
