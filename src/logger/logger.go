//Package logger holds the process-wide structured logger.
package logger

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

//Log is the shared logger instance
var Log *log.Logger

func init() {
	Log = log.New(os.Stderr)
	Log.SetTimeFormat("")
	Log.SetLevel(log.InfoLevel)
}

//Configure sets the log level from the CLI flag,
//falling back to the GOLIFE_LOG_LEVEL env var
func Configure(level string) {
	if level == "" {
		level = strings.ToLower(os.Getenv("GOLIFE_LOG_LEVEL"))
	}
	Log.SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
