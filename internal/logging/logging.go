// internal/logging/logging.go
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds the run logger: text lines with full timestamps on w.
// quiet caps verbosity at warn regardless of level.
func New(w io.Writer, level string, quiet bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if quiet && lvl > logrus.WarnLevel {
		lvl = logrus.WarnLevel
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	logger.SetLevel(lvl)
	return logger, nil
}

