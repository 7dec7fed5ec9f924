package util

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// ConsoleOutput writes logs to console
type ConsoleOutput struct {
	writer io.Writer
	format LogFormat
	mu     sync.Mutex
}

// NewConsoleOutput creates a new console output
func NewConsoleOutput(writer io.Writer, format LogFormat) Output {
	return &ConsoleOutput{
		writer: writer,
		format: format,
	}
}

// Write writes a log entry to console
func (c *ConsoleOutput) Write(entry LogEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	output, err := renderEntry(entry, c.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.writer, output)
	return err
}

// Close closes the console output
func (c *ConsoleOutput) Close() error {
	return nil
}

// FileOutput writes logs to a file
type FileOutput struct {
	file   *os.File
	format LogFormat
	mu     sync.Mutex
}

// NewFileOutput creates a new file output
func NewFileOutput(path string, format LogFormat) (Output, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &FileOutput{
		file:   file,
		format: format,
	}, nil
}

// Write writes a log entry to file
func (f *FileOutput) Write(entry LogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	output, err := renderEntry(entry, f.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.file, output)
	return err
}

// Close closes the file
func (f *FileOutput) Close() error {
	return f.file.Close()
}

func renderEntry(entry LogEntry, format LogFormat) (string, error) {
	if format == FormatJSON {
		data, err := sonic.Marshal(entry)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	timestamp := entry.Timestamp.Format("2006/01/02 15:04:05")
	output := fmt.Sprintf("%s [%s] %s", timestamp, entry.Level, entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fieldStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			fieldStrs = append(fieldStrs, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		output += " " + strings.Join(fieldStrs, " ")
	}
	return output, nil
}
