package task

import (
	"github.com/sirupsen/logrus"
)

// Formatter renders logrus entries for the pipeline log. Errors and
// warnings become issues on the run summary, debug lines are only shown
// when the pipeline runs with System.Debug enabled.
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var line string

	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		line = issue("error", entry.Message)
	case logrus.WarnLevel:
		line = issue("warning", entry.Message)
	case logrus.DebugLevel:
		line = "##[debug]" + dataEscaper.Replace(entry.Message)
	default:
		line = entry.Message
	}

	return []byte(line + "\n"), nil
}

func issue(kind, message string) string {
	return LoggingCommand{
		Name:       "task.issue",
		Properties: map[string]string{"type": kind},
		Message:    message,
	}.String()
}
