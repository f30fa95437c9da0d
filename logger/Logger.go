package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	mu      sync.Mutex
	entry   *logrus.Entry
	rotator *lumberjack.Logger
}

type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
}

func newPropertiesViper(configDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(configDir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	return v
}

func readLoggerProperties(v *viper.Viper) Properties {
	return Properties{
		LogFilename: cast.ToString(v.Get("logFilename")),
		MaxSize:     cast.ToInt(v.Get("maxSize")),
		MaxBackups:  cast.ToInt(v.Get("maxBackups")),
		MaxAge:      cast.ToInt(v.Get("maxAge")),
		Compress:    cast.ToBool(v.Get("compress")),
		Level:       cast.ToString(v.Get("level")),
	}
}

// ParseLevel maps the level names used in logger.properties to logrus levels.
func ParseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// Init reads logger.properties from configDir, opens the rotating log file and starts watching
// the file so that level changes apply without a restart. A missing file keeps the defaults.
func (l *Logger) Init(configDir string) error {
	v := newPropertiesViper(configDir)

	watch := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read logger properties: %w", err)
		}
		watch = false
	}

	props := readLoggerProperties(v)
	rotator := &lumberjack.Logger{
		Filename:   props.LogFilename,
		MaxSize:    props.MaxSize,
		MaxBackups: props.MaxBackups,
		MaxAge:     props.MaxAge,
		Compress:   props.Compress,
	}
	l.setup(rotator, ParseLevel(props.Level))
	l.rotator = rotator

	if watch {
		v.OnConfigChange(func(e fsnotify.Event) {
			level := cast.ToString(v.Get("level"))
			l.SetLevel(ParseLevel(level))
			l.Info(fmt.Sprintf(ConfigReloadedMsg, e.Name, level))
		})
		v.WatchConfig()
	}
	return nil
}

func (l *Logger) setup(out io.Writer, level logrus.Level) {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(out)
	base.SetLevel(level)

	l.mu.Lock()
	l.entry = logrus.NewEntry(base)
	l.mu.Unlock()
}

// UseWriter sends log output to out instead of a rotating file.
func (l *Logger) UseWriter(out io.Writer, level logrus.Level) {
	l.setup(out, level)
}

// NewSession tags every following entry with a fresh session id and returns it.
func (l *Logger) NewSession() string {
	id := uuid.New().String()
	entry := l.current().WithField("session", id)

	l.mu.Lock()
	l.entry = entry
	l.mu.Unlock()
	return id
}

func (l *Logger) SetLevel(level logrus.Level) {
	l.current().Logger.SetLevel(level)
}

func (l *Logger) current() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.entry == nil {
		base := logrus.New()
		base.SetOutput(io.Discard)
		l.entry = logrus.NewEntry(base)
	}
	return l.entry
}

// With returns an entry carrying the session id plus the given fields.
func (l *Logger) With(fields logrus.Fields) *logrus.Entry {
	return l.current().WithFields(fields)
}

func (l *Logger) Close() error {
	if l.rotator == nil {
		return nil
	}
	return l.rotator.Close()
}

func (l *Logger) Info(message string) {
	l.current().Info(message)
}

func (l *Logger) Error(message string) {
	l.current().Error(message)
}

func (l *Logger) Debug(message string) {
	l.current().Debug(message)
}

func (l *Logger) Warn(message string) {
	l.current().Warn(message)
}
