package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
)

var (
	output      io.Writer = os.Stderr
	logFilePath string
)

func SetDebugEnabled(enabled bool) {
	pterm.PrintDebugMessages = enabled
}

// SetOutput changes the writer diagnostics are printed to. Defaults to stderr,
// stdout is reserved for the report.
func SetOutput(w io.Writer) {
	output = w
}

// SetLogFile enables appending every message to the given file.
// An empty path disables the log file.
func SetLogFile(path string) {
	logFilePath = path
}

func Debug(format string, a ...interface{}) {
	writeToLogFile(format, a...)
	pterm.Debug.WithWriter(output).Printfln(format, a...)
}

func Info(format string, a ...interface{}) {
	writeToLogFile(format, a...)
	pterm.Info.WithWriter(output).Printfln(format, a...)
}

func Warning(format string, a ...interface{}) {
	writeToLogFile(format, a...)
	pterm.Warning.WithWriter(output).Printfln(format, a...)
}

func Error(format string, a ...interface{}) {
	writeToLogFile(format, a...)
	pterm.Error.WithWriter(output).Printfln(format, a...)
}

func writeToLogFile(format string, a ...interface{}) {
	if len(format) <= 0 || logFilePath == "" {
		return
	}
	file := openLogFile()
	if file == nil {
		return
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)
	logger := log.New(file, "", log.LstdFlags)
	logger.Printf(format, a...)
}

func openLogFile() *os.File {
	err := os.MkdirAll(filepath.Dir(logFilePath), 0755)
	if err != nil {
		log.Println(err)
		return nil
	}
	file, err := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Println(err)
		return nil
	}
	return file
}
