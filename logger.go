package fts_exec

import "fmt"

const (
	DebugLevel = iota
	InfoLevel
	ErrorLevel
)

var (
	LogLevel int        = InfoLevel // control defaultLogger log level
	Logger   ExecLogger = &DefaultLogger{}
)

type (
	// ExecLogger replace Logger with your own implementation to route the
	// library's logging into your logging stack
	ExecLogger interface {
		Debugf(format string, v ...interface{})
		Infof(format string, v ...interface{})
		Errorf(format string, v ...interface{})
	}

	// DefaultLogger a console logger use fmt lib
	DefaultLogger struct {
	}
)

func LogIfErr(err error, format string, v ...interface{}) {
	if err == nil {
		return
	}
	Logger.Errorf(format, v...)
	Logger.Errorf("Error:%s", err.Error())
}

func (l *DefaultLogger) Debugf(format string, v ...interface{}) {
	if LogLevel > DebugLevel {
		return
	}
	fmt.Printf(format, v...)
	fmt.Println()
}

func (l *DefaultLogger) Infof(format string, v ...interface{}) {
	if LogLevel > InfoLevel {
		return
	}
	fmt.Printf(format, v...)
	fmt.Println()
}

func (l *DefaultLogger) Errorf(format string, v ...interface{}) {
	if LogLevel > ErrorLevel {
		return
	}
	fmt.Printf(format, v...)
	fmt.Println()
}
