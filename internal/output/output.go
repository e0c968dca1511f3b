package output

import (
	"fmt"
	"io"

	"github.com/dshills/trendwatch/internal/trend"
)

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *trend.Report) error
	// Ext is the file extension used when the format is saved to disk.
	Ext() string
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "md", "markdown":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
