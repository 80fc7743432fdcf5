package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер процесса: структурный JSON в release режиме,
// текст с debug уровнем в остальных. LOG_LEVEL перекрывает уровень в любом
// режиме.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	l.SetLevel(logrus.InfoLevel)

	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		l.SetLevel(level)
	}

	return l
}
