package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

// JSONFormatter renders the report as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to stdout.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{writer: os.Stdout}
}

// Format implements Formatter.
func (f *JSONFormatter) Format(report Report) error {
	data, err := sonic.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.writer, string(data))
	return err
}
