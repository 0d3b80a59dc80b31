package log

import (
	"fmt"
	"github.com/sirupsen/logrus"
)

// missingValue marks a trailing key that was logged without a value.
const missingValue = "<missing>"

type logrusLogger struct {
	backend logrus.FieldLogger
}

var _ Logger = (*logrusLogger)(nil)

func (l *logrusLogger) Trace(msg string, fields ...interface{}) {
	if l.isEnabled(LevelTrace) {
		l.parseFields(fields).Debug(msg)
	}
}

func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	if l.isEnabled(LevelDebug) {
		l.parseFields(fields).Debug(msg)
	}
}

func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	if l.isEnabled(LevelInfo) {
		l.parseFields(fields).Info(msg)
	}
}

func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	if l.isEnabled(LevelWarn) {
		l.parseFields(fields).Warn(msg)
	}
}

func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	if l.isEnabled(LevelError) {
		l.parseFields(fields).Error(msg)
	}
}

func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	if l.isEnabled(LevelFatal) {
		l.parseFields(fields).Fatal(msg)
	}
}

func (l *logrusLogger) Sub(fields ...interface{}) Logger {
	return &logrusLogger{
		backend: l.parseFields(fields),
	}
}

func (l *logrusLogger) isEnabled(level Level) bool {
	return level >= currLevel
}

func (l *logrusLogger) parseFields(fields []interface{}) logrus.FieldLogger {
	argLen := len(fields)
	if argLen == 0 {
		return l.backend
	}

	lFields := make(logrus.Fields)
	for i := 0; i < argLen; i += 2 {
		kStr, ok := fields[i].(string)
		if !ok {
			kStr = fmt.Sprint(fields[i])
		}
		if i+1 == argLen {
			lFields[kStr] = missingValue
			break
		}
		v := fields[i+1]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		lFields[kStr] = v
	}
	return l.backend.WithFields(lFields)
}
