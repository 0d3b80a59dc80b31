package log

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = []string{"trace", "debug", "info", "warn", "error", "fatal"}

func NewLevel(l string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(l, name) {
			return Level(i), nil
		}
	}
	return LevelTrace, errors.Errorf("invalid log level %q", l)
}

func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		panic("invalid level")
	}
	return levelNames[l]
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	case LevelFatal:
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func NewFormat(f string) (Format, error) {
	switch Format(strings.ToLower(f)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, errors.Errorf("invalid log format %q", f)
	}
}

var currLevel = LevelInfo

var backend = logrus.New()

var rootLogger = &logrusLogger{
	backend: backend,
}

type Logger interface {
	Trace(string, ...interface{})
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

func SetLevel(level Level) {
	currLevel = level
	backend.SetLevel(level.logrus())
}

func SetFormat(format Format) {
	switch format {
	case FormatJSON:
		backend.SetFormatter(&logrus.JSONFormatter{})
	default:
		backend.SetFormatter(&logrus.TextFormatter{})
	}
}

// SetOutput redirects every logger. Logs default to stderr so that encoded
// output on stdout stays clean.
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	backend.SetOutput(os.Stderr)
	// set log level to trace by default in test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelTrace)
	}
}
