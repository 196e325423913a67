package logging

import (
	"io"
	"os"
	"strings"

	"github.com/amankaushik/achilles-workout-tracker/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 30
	defaultMaxAgeDays = 365
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	Rotation      Rotation

	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Rotation configures the log file rotation, zero values fall back to the defaults.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	LocalTime  bool
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if params.SentryEnabled {
		setupSentry(params)
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	switch {
	case params.LogFileName == "":
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
	case params.LogToStdout:
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, NewFileWriter(params.LogFileName, params.Rotation)))
		logrus.Println("writing logs to file and STDOUT")
	default:
		logrus.SetOutput(NewFileWriter(params.LogFileName, params.Rotation))
	}
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infof("sentry set up for %s", params.SentryServerName)
}

// NewFileWriter returns a rotating, compressed log file writer. A missing .log suffix is added.
func NewFileWriter(fileName string, rotation Rotation) io.WriteCloser {
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    orDefault(rotation.MaxSizeMB, defaultMaxSizeMB),
		MaxBackups: orDefault(rotation.MaxBackups, defaultMaxBackups),
		MaxAge:     orDefault(rotation.MaxAgeDays, defaultMaxAgeDays),
		LocalTime:  rotation.LocalTime,
		Compress:   true,
	}
}

func orDefault(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}

// GetLevel parses the level name, unknown names log everything.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
