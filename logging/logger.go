package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates an hclog logger writing to output, or stderr when output is nil.
func NewLogger(name, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
