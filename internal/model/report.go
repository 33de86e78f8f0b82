package model

// ResourceInfo describes one compiled resource for listings.
type ResourceInfo struct {
	ID         string `yaml:"id"`                    // C++ qualified name
	Path       Path   `yaml:"path"`                  // resolved file path
	SharedWith string `yaml:"shared_with,omitempty"` // resource whose content is reused
}

// GenerateResult summarizes one generation run.
type GenerateResult struct {
	Resources     int
	HeaderFile    Path
	SourceFile    Path
	HeaderWritten bool
	SourceWritten bool
}

// FileDiff is the unified diff between an artifact on disk and its
// regenerated content. An empty Patch means the file is up to date.
type FileDiff struct {
	Path    Path
	Patch   string
	Skipped bool // the artifact is not stale and was not regenerated
}
