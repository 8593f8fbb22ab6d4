package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/consigcody94/repo-doctor/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold) // critical findings and issues
	WarningColor  = color.New(color.FgYellow)          // warnings, standard caution
	InfoColor     = color.New(color.FgCyan)            // informational signal
	GoodColor     = color.New(color.FgGreen, color.Bold)
)

// SeverityLabel returns the upper-cased severity tag, colored when enabled.
func SeverityLabel(severity schema.Severity, useColors bool) string {
	text := strings.ToUpper(string(severity))
	if !useColors {
		return text
	}
	switch severity {
	case schema.SeverityCritical:
		return CriticalColor.Sprint(text)
	case schema.SeverityWarning:
		return WarningColor.Sprint(text)
	default:
		return InfoColor.Sprint(text)
	}
}

// GradeLabel returns the letter grade, colored by band when enabled.
func GradeLabel(grade schema.Grade, useColors bool) string {
	text := string(grade)
	if !useColors {
		return text
	}
	switch grade {
	case schema.GradeA, schema.GradeB:
		return GoodColor.Sprint(text)
	case schema.GradeC, schema.GradeD:
		return WarningColor.Sprint(text)
	default:
		return CriticalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output.
// An empty path selects stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath truncates a file path to a maximum width with ellipsis
// prefix. Requires maxWidth > 3 so there is room for the "..." prefix and
// at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
