package core

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/consigcody94/repo-doctor/core/secscan"
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
)

// largeFileLimit caps the reported large-file list; the untruncated total
// is kept in LargeFileCount.
const largeFileLimit = 10

// noExtensionLabel buckets extensionless files in the per-type counts.
const noExtensionLabel = "no extension"

// collectFiles walks the working tree accumulating size and composition
// aggregates. When the collector is skipped the caller still receives a
// zero-valued structure with non-nil collections.
func collectFiles(ctx context.Context, cfg *contract.Config, root string) schema.FileMetrics {
	metrics := schema.NewFileMetrics()
	if cfg.SkipFiles {
		return metrics
	}

	threshold := cfg.MaxFileSizeBytes()
	large := []schema.LargeFile{}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return fs.SkipAll
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			metrics.SkippedFiles++
			return nil
		}
		if d.IsDir() {
			if path != root && secscan.IsExcludedDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			metrics.SkippedFiles++
			return nil
		}
		metrics.TotalSizeBytes += info.Size()

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext == "" {
			ext = noExtensionLabel
		}
		metrics.FileTypes[ext]++

		if secscan.IsBinaryName(d.Name()) {
			metrics.BinaryFiles++
		}
		if info.Size() > threshold {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			large = append(large, schema.LargeFile{
				Path:      filepath.ToSlash(rel),
				SizeBytes: info.Size(),
			})
		}
		return nil
	})

	sort.Slice(large, func(i, j int) bool {
		return large[i].SizeBytes > large[j].SizeBytes
	})
	metrics.LargeFileCount = len(large)
	if len(large) > largeFileLimit {
		large = large[:largeFileLimit]
	}
	metrics.LargeFiles = large
	return metrics
}
