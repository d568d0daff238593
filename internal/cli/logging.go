// Logging setup for the stride CLI: zerolog to a rolling file under the
// data directory, plus stderr when --verbose is set.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logFileName is the rolling log file created under DataDir.
const logFileName = "stride.log"

// newLogger builds the CLI logger. The file rotates at 10 MB with three
// backups kept; --verbose mirrors events to stderr in console format.
func newLogger(dataDir string) zerolog.Logger {
	file := &lumberjack.Logger{
		Filename:   filepath.Join(dataDir, logFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}

	var w io.Writer = file
	if flags.verbose {
		w = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return zerolog.New(w).With().Timestamp().Logger()
}
