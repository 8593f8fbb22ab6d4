package schema

// Custom string types for type safety.
type (
	// Severity represents the severity of a finding or issue.
	Severity string

	// Priority represents the priority of a recommendation.
	Priority string

	// IssueCategory represents the category label of an issue.
	IssueCategory string

	// PatternCategory represents how a secret pattern's matches are routed.
	PatternCategory string

	// Grade represents the letter grade derived from the health score.
	Grade string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All severities supported.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// All recommendation priorities supported.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// All issue categories supported.
const (
	CategorySecurity    IssueCategory = "Security"
	CategoryPerformance IssueCategory = "Performance"
	CategoryMaintenance IssueCategory = "Maintenance"
	CategoryActivity    IssueCategory = "Activity"
)

// All pattern categories supported. Matches from privateKey patterns are
// routed into the exposed-keys collection instead of potential-secrets.
const (
	PatternSecret     PatternCategory = "secret"
	PatternPrivateKey PatternCategory = "privateKey"
)

// All letter grades supported.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// All output modes supported.
const (
	TextOut     OutputMode = "text" // default
	JSONOut     OutputMode = "json"
	MarkdownOut OutputMode = "markdown"
	ParquetOut  OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:     {},
	JSONOut:     {},
	MarkdownOut: {},
	ParquetOut:  {},
}

// Commit frequency labels bucketed by average commits per day.
const (
	FrequencyVeryActive = "Very active"
	FrequencyActive     = "Active"
	FrequencyModerate   = "Moderate"
	FrequencyLow        = "Low"
	FrequencyVeryLow    = "Very low"
	FrequencyNone       = "No commits"
)

// Commit pattern labels derived from recent weekday distribution.
const (
	PatternWeekdays   = "Most active on weekdays"
	PatternWeekends   = "Most active on weekends"
	PatternConsistent = "Consistent activity throughout week"
	PatternTooFew     = "Too few commits to analyze"
	PatternNone       = "No activity"
)
