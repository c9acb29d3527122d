package logs

import "os"

// CreateStdLogger returns loggers writing messages to stdout and errors to stderr.
func CreateStdLogger(loggerSource string) (Loggers, error) {
	l := &GenericLoggers{}
	l.init(os.Stdout, os.Stderr, loggerSource)
	return l, nil
}
