// Package logger builds zerolog loggers for datakit tools
package logger

// ////////////////////////////////////////////////////////////////////////////////// //
//                                                                                    //
//                         Copyright (c) 2025 ESSENTIAL KAOS                          //
//      Apache License, Version 2.0 <https://www.apache.org/licenses/LICENSE-2.0>     //
//                                                                                    //
// ////////////////////////////////////////////////////////////////////////////////// //

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// ////////////////////////////////////////////////////////////////////////////////// //

// New creates new logger. Debug mode enables human-readable console output
// and debug level, otherwise JSON records with info level are written.
func New(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
