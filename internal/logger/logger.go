package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// stderrHook routes warnings and errors to stderr so stdout stays
// clean for command output such as exported snapshots.
type stderrHook struct{}

func (h *stderrHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel}
}

func (h *stderrHook) Fire(entry *logrus.Entry) error {
	entry.Logger.Out = os.Stderr
	return nil
}

// Setup configures the process-wide logger. Unknown level strings
// fall back to info.
func Setup(level string) {
	logrus.SetOutput(os.Stdout)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.AddHook(&stderrHook{})
}
