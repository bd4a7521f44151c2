package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/constants"
	"github.com/YADRO-KNS/obmc-yadro-hostpwrctl/internal/environment"
)

// setupLogger points the global logger at stderr and, when configured, at a
// rolling log file. The returned func closes the file.
func setupLogger(env environment.Environment, stderr io.Writer) (closer func(), err error) {
	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setupLogger: %w", err)
	}

	closer = func() {}
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339},
	}

	if !lo.IsEmpty(env.LogFile) {
		logWriter, err := setupRollingLogFile(env.LogFile)
		if err != nil {
			return nil, fmt.Errorf("setupLogger: %w", err)
		}

		writers = append(writers, logWriter)
		closer = func() {
			if err := logWriter.Close(); err != nil {
				fmt.Fprintf(stderr, "close log file: %s\n", err)
			}
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if env.IsDebug() {
		logger = logger.Caller()
	}

	log.Logger = logger.Logger()
	zerolog.SetGlobalLevel(level)

	return closer, nil
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    5,    // megabytes per log file
		MaxAge:     30,   // days to keep rotated files
		MaxBackups: 3,    // rotated files to keep
		Compress:   true, // gzip rotated files
	}, nil
}
