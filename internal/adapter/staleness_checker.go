package adapter

import (
	"log/slog"
	"time"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// StalenessChecker decides whether the source artifact has to be rebuilt.
type StalenessChecker interface {
	IsStale(manifest, header, source m.Path, resources []m.Resource) bool
}

// ModTimeStalenessChecker compares modification times.
type ModTimeStalenessChecker struct {
	fs SourceFSAdapter
}

// NewModTimeStalenessChecker constructs a checker reading times through fs.
func NewModTimeStalenessChecker(fs SourceFSAdapter) *ModTimeStalenessChecker {
	return &ModTimeStalenessChecker{fs: fs}
}

// IsStale reports true when an output is missing, the manifest is newer
// than an output, the header is newer than the source, or any resource is
// missing or newer than the source.
func (c *ModTimeStalenessChecker) IsStale(manifest, header, source m.Path, resources []m.Resource) bool {
	manifestTime, _ := c.fs.ModTime(manifest)

	headerTime, ok := c.fs.ModTime(header)
	if !ok {
		slog.Debug("header missing", "path", header)
		return true
	}

	sourceTime, ok := c.fs.ModTime(source)
	if !ok {
		slog.Debug("source missing", "path", source)
		return true
	}

	if manifestTime.After(headerTime) || manifestTime.After(sourceTime) || headerTime.After(sourceTime) {
		return true
	}

	for _, resource := range resources {
		if isNewer(c.fs, resource.Path, sourceTime) {
			slog.Debug("resource changed", "id", resource.ID, "path", resource.Path)
			return true
		}
	}

	return false
}

func isNewer(fs SourceFSAdapter, path m.Path, than time.Time) bool {
	t, ok := fs.ModTime(path)
	return !ok || t.After(than)
}
