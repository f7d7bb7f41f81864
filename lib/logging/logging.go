package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger builds the zerolog-backed lecho logger used across the server.
// Logs go to stdout; when logFilePath is set a timestamped file next to
// it is opened and used instead.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout,
		lecho.WithLevel(log.DEBUG),
		lecho.WithTimestamp(),
	)
	if logFilePath != "" {
		file, err := openLogFile(logFilePath)
		if err != nil {
			logger.Errorf("failed to open log file: %v", err)
			return logger
		}
		logger.SetOutput(file)
	}

	return logger
}

// openLogFile inserts a start timestamp into the configured path so
// restarts never clobber the previous run's log. The format avoids
// spaces and colons, which trip up some log shippers.
func openLogFile(path string) (*os.File, error) {
	stamp := time.Now().Format("2006-01-02_15-04-05")
	if extension := filepath.Ext(path); extension != "" {
		path = strings.Replace(path, extension, stamp+extension, 1)
	} else {
		path += stamp
	}

	return os.Create(path)
}
