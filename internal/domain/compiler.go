package domain

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// CompilerState is threaded through the definitions of one manifest.
type CompilerState struct {
	BaseDir    m.Path
	IDPrefix   string
	PathPrefix string
	Resources  []m.Resource
}

// Compiler folds parsed definitions into a flat list of resources.
type Compiler struct {
	state CompilerState
}

// NewCompiler creates a Compiler resolving paths relative to baseDir,
// usually the directory containing the manifest.
func NewCompiler(baseDir m.Path) *Compiler {
	return &Compiler{state: CompilerState{BaseDir: baseDir}}
}

// State returns a copy of the current fold state.
func (c *Compiler) State() CompilerState {
	return c.state
}

// Apply folds one definition into the state. Headers replace both prefixes,
// entries append a resource.
func (c *Compiler) Apply(def m.Definition) {
	if def.IsHeader {
		c.state.IDPrefix = def.ID
		c.state.PathPrefix = def.Path

		return
	}

	id := def.ID
	if c.state.IDPrefix != "" {
		id = c.state.IDPrefix + m.IDSeparator + id
	}

	elems := []string{string(c.state.BaseDir)}
	if c.state.PathPrefix != "" {
		elems = append(elems, c.state.PathPrefix)
	}

	elems = append(elems, def.Path)

	c.state.Resources = append(c.state.Resources, m.Resource{
		ID:   id,
		Path: JoinPath(elems...),
	})
}

// Resources returns the resources collected so far in manifest order.
func (c *Compiler) Resources() []m.Resource {
	return c.state.Resources
}

// JoinPath joins path elements. An absolute element discards everything
// before it. Empty elements are ignored.
func JoinPath(elems ...string) m.Path {
	start := 0

	for i, elem := range elems {
		if filepath.IsAbs(elem) || strings.HasPrefix(elem, "/") {
			start = i
		}
	}

	return m.Path(filepath.Clean(filepath.Join(elems[start:]...)))
}

// CompileManifest parses the manifest text line by line and returns its
// resources sorted by identifier. Paths are resolved against baseDir.
func CompileManifest(baseDir m.Path, text string) ([]m.Resource, error) {
	compiler := NewCompiler(baseDir)

	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lineNo := i + 1

		def, err := ParseDefinition(strings.TrimSuffix(line, "\r"))
		if err != nil {
			var grammarErr *GrammarError
			if errors.As(err, &grammarErr) {
				grammarErr.Line = lineNo
			}

			slog.Debug("manifest line rejected", "line", lineNo, "error", err)

			return nil, err
		}

		if def != nil {
			compiler.Apply(*def)
		}
	}

	resources := compiler.Resources()
	m.SortResources(resources)

	if err := CheckDuplicates(resources); err != nil {
		return nil, err
	}

	slog.Debug("manifest compiled", "base", baseDir, "lines", len(lines), "resources", len(resources))

	return resources, nil
}

// CheckDuplicates reports the first identifier used twice in a sorted list.
func CheckDuplicates(sorted []m.Resource) error {
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].ID == sorted[i].ID {
			return &SemanticError{ID: sorted[i].ID}
		}
	}

	return nil
}
