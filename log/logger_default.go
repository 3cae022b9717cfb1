package log

import (
	"io"
	"os"

	"github.com/nanovms/genboot/types"
)

var defaultLogger *Logger

// Diagnostics never go to stdout, which carries the generated script.
func init() {
	defaultLogger = New(os.Stderr)
	defaultLogger.SetWarn(true)
	defaultLogger.SetError(true)
}

// InitDefault replaces the package-level logger.
func InitDefault(output io.Writer, options *types.Options) {
	defaultLogger = New(output)

	if options == nil {
		defaultLogger.SetWarn(true)
		defaultLogger.SetError(true)
		return
	}

	defaultLogger.SetWarn(options.ShowWarnings)
	defaultLogger.SetError(options.ShowErrors)

	if options.ShowDebug {
		defaultLogger.SetDebug(true)
		defaultLogger.SetInfo(true)
		defaultLogger.SetWarn(true)
		defaultLogger.SetError(true)
	}
}

// Default returns the package-level logger
func Default() *Logger {
	return defaultLogger
}

// Infof logs info-level formatted message using default logger.
func Infof(format string, a ...interface{}) {
	defaultLogger.Infof(format, a...)
}

// Warnf logs warning-level formatted message using default logger.
func Warnf(format string, a ...interface{}) {
	defaultLogger.Warnf(format, a...)
}

// Errorf logs error-level formatted message using default logger.
func Errorf(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
}

// Debugf logs debug-level formatted message using default logger.
func Debugf(format string, a ...interface{}) {
	defaultLogger.Debugf(format, a...)
}
