package schema

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateFormat is the display format for dates.
const DateFormat = "2006-01-02"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes converts a byte count to a human-readable string using binary
// prefixes. The decimal place is kept only when the value is non-integer:
// 1024 -> "1 KB", 1536 -> "1.5 KB".
func FormatBytes(b int64) string {
	if b < 1024 {
		return fmt.Sprintf("%d B", b)
	}
	value := float64(b)
	exp := 0
	for value >= 1024 && exp < len(byteUnits)-1 {
		value /= 1024
		exp++
	}
	if value == math.Trunc(value) {
		return fmt.Sprintf("%d %s", int64(value), byteUnits[exp])
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[exp])
}

// FormatDate renders a timestamp as a display date.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatAge renders an elapsed duration as days below 30 days, months below
// a year, and years to one decimal beyond that.
func FormatAge(elapsed time.Duration) string {
	days := int(elapsed.Hours() / 24)
	switch {
	case days < 30:
		return Pluralize(days, "day")
	case days < 365:
		return Pluralize(days/30, "month")
	default:
		return fmt.Sprintf("%.1f years", float64(days)/365.0)
	}
}

// GradeForScore maps a health score to its letter grade. Boundaries are
// exact integer cutoffs: 89 is a B, 90 is an A.
func GradeForScore(score int) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// Pluralize renders a count plus noun phrase, e.g. "1 branch", "3 branches".
// Only simple "s" pluralization is supported; "branch" gets "es".
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	suffix := "s"
	if strings.HasSuffix(noun, "ch") || strings.HasSuffix(noun, "sh") ||
		strings.HasSuffix(noun, "s") || strings.HasSuffix(noun, "x") {
		suffix = "es"
	}
	return fmt.Sprintf("%d %s%s", n, noun, suffix)
}
