// Package secscan walks a working tree and matches file content against a
// static table of credential-shaped patterns.
package secscan

import (
	"regexp"

	"github.com/consigcody94/repo-doctor/schema"
)

// Pattern is one credential-shape rule. Severity reflects exploitability:
// hard-coded provider credentials are critical, generic assignment or
// token-shape heuristics are warnings because of their false-positive rate.
// Category controls routing: privateKey matches land in the exposed-keys
// collection instead of potential-secrets.
type Pattern struct {
	Name     string
	Regex    *regexp.Regexp
	Severity schema.Severity
	Category schema.PatternCategory
}

// Table is the process-wide pattern table. It is compiled once at startup,
// read-only, and safe to share across concurrent scans.
var Table = []Pattern{
	{
		Name:     "AWS Access Key",
		Regex:    regexp.MustCompile(`(A3T[A-Z0-9]|AKIA|AGPA|AIDA|AROA|AIPA|ANPA|ANVA|ASIA)[0-9A-Z]{16}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "AWS Secret Key",
		Regex:    regexp.MustCompile(`(?i)aws[_-]?secret[_-]?(access[_-]?)?key\s*[:=]\s*['"]?[A-Za-z0-9/+=]{40}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "GitHub Token",
		Regex:    regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36,}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "GitHub Fine-Grained Token",
		Regex:    regexp.MustCompile(`github_pat_[A-Za-z0-9_]{82}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "GitLab Token",
		Regex:    regexp.MustCompile(`glpat-[A-Za-z0-9\-_]{20,}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Slack Token",
		Regex:    regexp.MustCompile(`xox[baprs]-[A-Za-z0-9-]{10,}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Stripe Key",
		Regex:    regexp.MustCompile(`(sk|rk)_(live|test)_[A-Za-z0-9]{24,}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Google API Key",
		Regex:    regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "SendGrid Key",
		Regex:    regexp.MustCompile(`SG\.[A-Za-z0-9_\-]{22}\.[A-Za-z0-9_\-]{43}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Twilio API Key",
		Regex:    regexp.MustCompile(`SK[0-9a-fA-F]{32}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "NPM Token",
		Regex:    regexp.MustCompile(`npm_[A-Za-z0-9]{36}`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Connection String",
		Regex:    regexp.MustCompile(`(?i)(postgres(ql)?|mysql|mongodb(\+srv)?|redis|amqp)://[^\s:@/]+:[^\s@/]+@[^\s"']+`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Private Key",
		Regex:    regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP |ENCRYPTED )?PRIVATE KEY( BLOCK)?-----`),
		Severity: schema.SeverityCritical,
		Category: schema.PatternPrivateKey,
	},
	{
		Name:     "Generic API Key",
		Regex:    regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*['"][A-Za-z0-9_\-]{16,}['"]`),
		Severity: schema.SeverityWarning,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Generic Secret",
		Regex:    regexp.MustCompile(`(?i)(secret|token)\s*[:=]\s*['"][A-Za-z0-9_\-]{16,}['"]`),
		Severity: schema.SeverityWarning,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Password Assignment",
		Regex:    regexp.MustCompile(`(?i)password\s*[:=]\s*['"][^'"]{8,}['"]`),
		Severity: schema.SeverityWarning,
		Category: schema.PatternSecret,
	},
	{
		Name:     "JWT",
		Regex:    regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
		Severity: schema.SeverityWarning,
		Category: schema.PatternSecret,
	},
	{
		Name:     "Authorization Header",
		Regex:    regexp.MustCompile(`(?i)authorization\s*[:=]\s*['"]?(bearer|basic)\s+[A-Za-z0-9\-_.=:+/]{16,}`),
		Severity: schema.SeverityWarning,
		Category: schema.PatternSecret,
	},
}
