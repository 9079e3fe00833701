package logger

import (
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

type LogLevel string

const (
	LevelInfo    LogLevel = "INFO"
	LevelSuccess LogLevel = "SUCCESS"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
	LevelDebug   LogLevel = "DEBUG"
)

var (
	errorLogger  *stdlog.Logger
	errorLogFile *os.File

	// Separate AI logger so orchestration traces don't clutter the error log
	aiLogger  *stdlog.Logger
	aiLogFile *os.File
)

func init() {
	dataDir := filepath.Join("data")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fmt.Printf("Error creating data directory: %v\n", err)
		return
	}

	logPath := filepath.Join(dataDir, "error.log")

	var err error
	errorLogFile, err = os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("Error opening error log file: %v\n", err)
	} else {
		errorLogger = stdlog.New(errorLogFile, "", 0)
	}

	aiLogPath := filepath.Join(dataDir, "ai.log")

	aiLogFile, err = os.OpenFile(aiLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("Error opening AI log file: %v\n", err)
	} else {
		aiLogger = stdlog.New(aiLogFile, "", 0)
	}
}

// CloseLogFiles should be called during shutdown to properly close all log files
func CloseLogFiles() {
	if errorLogFile != nil {
		errorLogFile.Close()
	}

	if aiLogFile != nil {
		aiLogFile.Close()
	}
}

var colorMap = map[string]func(a ...interface{}) string{
	string(LevelInfo):    color.New(color.FgBlue).SprintFunc(),
	string(LevelSuccess): color.New(color.FgGreen).SprintFunc(),
	string(LevelWarning): color.New(color.FgYellow).SprintFunc(),
	string(LevelError):   color.New(color.FgRed).SprintFunc(),
	string(LevelDebug):   color.New(color.FgCyan).SprintFunc(),
}

func getColorFunc(level LogLevel) func(a ...interface{}) string {
	if fn, ok := colorMap[string(level)]; ok {
		return fn
	}
	return color.New(color.FgWhite).SprintFunc()
}

func logMessage(level LogLevel, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	colorFunc := getColorFunc(level)
	fmt.Println(colorFunc(fmt.Sprintf("[%s] ", level)) + message)

	// Only errors and warnings go to error.log
	if level == LevelError || level == LevelWarning {
		if errorLogger != nil {
			errorLogger.Printf("[%s] %s: %s", level, timestamp, message)
		}
	}
}

func Infof(format string, args ...interface{}) {
	logMessage(LevelInfo, format, args...)
}

func Successf(format string, args ...interface{}) {
	logMessage(LevelSuccess, format, args...)
}

func Warnf(format string, args ...interface{}) {
	logMessage(LevelWarning, format, args...)
}

func Errorf(format string, args ...interface{}) {
	logMessage(LevelError, format, args...)
}

func Debugf(format string, args ...interface{}) {
	logMessage(LevelDebug, format, args...)
}

// AIDebugf logs orchestration-loop debug messages to the AI log file instead
// of error.log, keeping the error log clean while retaining detailed traces
func AIDebugf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	colorFunc := getColorFunc(LevelDebug)
	fmt.Println(colorFunc("[AI-DEBUG] ") + message)

	if aiLogger != nil {
		aiLogger.Printf("[DEBUG] %s: %s", timestamp, message)
	}
}
