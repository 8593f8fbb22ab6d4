package secscan

import (
	"bufio"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/consigcody94/repo-doctor/schema"
)

// maxExcerptLen caps the stored portion of a matched secret. Findings never
// carry more than this many characters of the raw match.
const maxExcerptLen = 50

// maxLineBytes bounds the line scanner buffer for minified or generated
// files with very long lines.
const maxLineBytes = 1024 * 1024

// excludedDirs are pruned by exact name at any depth: version-control
// metadata, dependency/vendor trees, and build/output/coverage directories.
var excludedDirs = map[string]struct{}{
	".git":             {},
	".hg":              {},
	".svn":             {},
	"node_modules":     {},
	"vendor":           {},
	"bower_components": {},
	"venv":             {},
	".venv":            {},
	"__pycache__":      {},
	"target":           {},
	"dist":             {},
	"build":            {},
	"out":              {},
	"bin":              {},
	"obj":              {},
	"coverage":         {},
	".idea":            {},
	".vscode":          {},
	".next":            {},
	".nuxt":            {},
	".cache":           {},
}

// sensitiveSuffixes flag files whose name alone suggests credential
// material. Matching is by suffix, so "backend/.env.production" is caught
// by the ".env.production" entry.
var sensitiveSuffixes = []string{
	".env",
	".env.local",
	".env.development",
	".env.production",
	".env.staging",
	".pem",
	".key",
	".p12",
	".pfx",
	"credentials.json",
	"service-account.json",
	"id_rsa",
	"id_dsa",
	"id_ecdsa",
	"id_ed25519",
	".npmrc",
	".pypirc",
	".netrc",
	".htpasswd",
	".kdbx",
}

// binaryExts are skipped for content scanning. Name-based checks still run
// on binary files.
var binaryExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {},
	".webp": {}, ".tiff": {},
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".rar": {},
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".bin": {}, ".o": {}, ".a": {},
	".mp3": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".mkv": {}, ".wav": {},
	".flac": {}, ".ogg": {},
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {},
	".jar": {}, ".war": {}, ".class": {}, ".pyc": {}, ".wasm": {},
	".db": {}, ".sqlite": {},
}

// IsExcludedDir reports whether a directory name is pruned from traversal.
func IsExcludedDir(name string) bool {
	_, ok := excludedDirs[name]
	return ok
}

// IsSensitiveName reports whether a file name matches the sensitive
// suffix list.
func IsSensitiveName(name string) bool {
	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// IsBinaryName reports whether a file name carries a known binary
// extension.
func IsBinaryName(name string) bool {
	_, ok := binaryExts[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Scan walks the tree rooted at root and returns security metrics covering
// every reachable regular file. It never fails: unreadable files are
// counted in SkippedFiles and excluded, so one bad file cannot abort a
// multi-thousand-file scan. Cancellation via ctx stops the walk early and
// returns whatever was accumulated.
func Scan(ctx context.Context, root string) schema.SecurityMetrics {
	metrics := schema.NewSecurityMetrics()

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return fs.SkipAll
		}
		if walkErr != nil {
			// Unreadable directory entries degrade silently.
			return nil
		}

		if d.IsDir() {
			if path != root && IsExcludedDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		// Name checks always run; only content scanning is skipped for
		// binaries.
		if IsSensitiveName(d.Name()) {
			metrics.SensitiveFiles = append(metrics.SensitiveFiles, relPath)
		}
		if IsBinaryName(d.Name()) {
			return nil
		}

		scanFileContent(path, relPath, &metrics)
		return nil
	})

	return metrics
}

// scanFileContent matches every line of one text file against the pattern
// table, appending findings to metrics. Read failures increment
// SkippedFiles and return without error.
func scanFileContent(path, relPath string, metrics *schema.SecurityMetrics) {
	f, err := os.Open(path)
	if err != nil {
		metrics.SkippedFiles++
		return
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		for i := range Table {
			p := &Table[i]
			for _, match := range p.Regex.FindAllString(line, -1) {
				finding := schema.SecurityFinding{
					File:     relPath,
					Line:     lineNo,
					Pattern:  p.Name,
					Match:    Excerpt(match),
					Severity: p.Severity,
				}
				if p.Category == schema.PatternPrivateKey {
					metrics.ExposedKeys = append(metrics.ExposedKeys, finding)
				} else {
					metrics.PotentialSecrets = append(metrics.PotentialSecrets, finding)
				}
			}
		}
	}
	if scanner.Err() != nil {
		// Undecodable or oversized content; keep findings gathered so far.
		metrics.SkippedFiles++
	}
}

// Excerpt caps a raw match at maxExcerptLen characters, appending an
// ellipsis when truncated.
func Excerpt(match string) string {
	runes := []rune(match)
	if len(runes) <= maxExcerptLen {
		return match
	}
	return string(runes[:maxExcerptLen]) + "..."
}
