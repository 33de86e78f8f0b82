package domain

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// ProvenanceComment starts every generated artifact.
const ProvenanceComment = "// automatically generated by res2cpp"

// Encoder produces the array initializer text for one resource file.
type Encoder interface {
	Encode(path m.Path, wordSize int, littleEndian bool) (m.Payload, error)
}

// Generator renders the header and source artifacts for a sorted,
// duplicate free resource list.
type Generator struct {
	settings m.Settings
	encoder  Encoder
}

// NewGenerator creates a Generator. The encoder is only used by
// GenerateSource and may be nil when only headers are generated.
func NewGenerator(settings m.Settings, encoder Encoder) *Generator {
	return &Generator{
		settings: settings.WithDefaultOutputs(),
		encoder:  encoder,
	}
}

// GenerateHeader writes the declarations of all resources.
func (g *Generator) GenerateHeader(w io.Writer, resources []m.Resource) error {
	return g.newEmitter(w, true).run(resources)
}

// GenerateSource writes the definitions of all resources, embedding the
// content of each distinct file once.
func (g *Generator) GenerateSource(w io.Writer, resources []m.Resource) error {
	if g.encoder == nil {
		return fmt.Errorf("generate source: no encoder configured")
	}

	return g.newEmitter(w, false).run(resources)
}

// emitter holds the formatting state of one generation pass.
type emitter struct {
	w        io.Writer
	err      error
	settings m.Settings
	encoder  Encoder
	isHeader bool

	// qualifiedType is the fully qualified resource type, typeParts its
	// namespace segments and resourceType the name valid in the current
	// namespace.
	qualifiedType string
	typeParts     []string
	resourceType  string

	namespace []string
	byPath    map[m.Path]string
}

func (g *Generator) newEmitter(w io.Writer, isHeader bool) *emitter {
	e := &emitter{
		w:        w,
		settings: g.settings,
		encoder:  g.encoder,
		isHeader: isHeader,
		byPath:   make(map[m.Path]string),
	}
	e.setResourceType(g.settings.QualifiedResourceType())

	return e
}

func (e *emitter) run(resources []m.Resource) error {
	e.writePreamble()
	e.writeAlias()

	for _, resource := range resources {
		e.writeResource(resource)

		if e.err != nil {
			return e.err
		}
	}

	e.closeNamespaces(0)

	return e.err
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}

	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) writeIndent() {
	e.printf("%s", strings.Repeat("  ", len(e.namespace)))
}

func (e *emitter) setResourceType(qualified string) {
	e.qualifiedType = qualified
	e.typeParts = strings.Split(strings.ReplaceAll(qualified, namespaceSeparator, "/"), "/")
	e.qualifyResourceType()
}

// qualifyResourceType drops the namespace part of the resource type while
// the current namespace is nested within it.
func (e *emitter) qualifyResourceType() {
	e.resourceType = e.qualifiedType

	parents := e.typeParts[:len(e.typeParts)-1]
	if len(parents) == 0 || len(e.namespace) < len(parents) {
		return
	}

	for i, part := range parents {
		if e.namespace[i] != part {
			return
		}
	}

	e.resourceType = e.typeParts[len(e.typeParts)-1]
}

func (e *emitter) openNamespace(name string) {
	e.writeIndent()
	e.printf("namespace %s {\n", name)
	e.namespace = append(e.namespace, name)
	e.qualifyResourceType()
}

func (e *emitter) closeNamespace() {
	name := e.namespace[len(e.namespace)-1]
	e.namespace = e.namespace[:len(e.namespace)-1]
	e.qualifyResourceType()
	e.writeIndent()
	e.printf("} // namespace %s\n", name)
}

// closeNamespaces closes namespaces until level remain open and reports
// whether any was closed.
func (e *emitter) closeNamespaces(level int) bool {
	if len(e.namespace) <= level {
		return false
	}

	for len(e.namespace) > level {
		e.closeNamespace()
	}

	return true
}

func (e *emitter) writePreamble() {
	if e.isHeader {
		e.printf("#pragma once\n")
	}

	e.printf("\n%s", ProvenanceComment)

	// settings changing the output shape also change the header, which
	// invalidates the source
	if marker := e.settings.Endianness.String(); marker != "" {
		e.printf(" [%s]", marker)
	}

	e.printf("\n\n")

	includes := e.settings.Includes

	switch {
	case !e.isHeader:
		e.printf("#include \"%s\"\n", filepath.ToSlash(string(e.settings.HeaderFile)))
		e.printf("#include <cstdint>\n")
	case len(includes) == 1 && !strings.HasPrefix(includes[0], "<"):
		e.printf("#include \"%s\"\n", includes[0])
	default:
		e.printf("#include <cstddef>\n")
		e.printf("#include <utility>\n")

		for _, include := range includes {
			e.printf("#include %s\n", include)
		}
	}

	e.printf("\n")
}

// writeAlias declares the alias type in the header. Both passes refer to
// resources by the alias afterwards.
func (e *emitter) writeAlias() {
	alias := e.settings.ResourceAlias
	if alias == "" {
		return
	}

	if e.isHeader {
		parts := strings.Split(strings.ReplaceAll(alias, namespaceSeparator, "/"), "/")
		for _, part := range parts[:len(parts)-1] {
			e.openNamespace(part)
		}

		e.writeIndent()
		e.printf("using %s = %s;\n\n", parts[len(parts)-1], e.resourceType)
	}

	e.setResourceType(alias)
}

func (e *emitter) writeResource(resource m.Resource) {
	segments := resource.Segments()
	last := len(segments) - 1

	for level, segment := range segments[:last] {
		if level >= len(e.namespace) || e.namespace[level] != segment {
			if e.closeNamespaces(level) {
				e.printf("\n")
			}

			e.openNamespace(segment)
		}
	}

	e.closeNamespaces(last)

	name := segments[last]

	if e.isHeader {
		e.writeIndent()
		e.printf("extern const %s %s;\n", e.resourceType, name)

		return
	}

	if first, ok := e.byPath[resource.Path]; ok {
		slog.Debug("sharing embedded content", "id", resource.ID, "with", first, "path", resource.Path)
		e.writeIndent()
		e.printf("const %s %s = %s;\n", e.resourceType, name, QualifyID(first))

		return
	}

	e.writeDefinition(name, resource.Path)
	e.byPath[resource.Path] = resource.ID
}

func (e *emitter) writeDefinition(name string, path m.Path) {
	if e.err != nil {
		return
	}

	endianness := e.settings.Endianness

	payload, err := e.encoder.Encode(path, endianness.WordSize(), endianness != m.EndianBig)
	if err != nil {
		e.err = err
		return
	}

	wordType := "uint8_t"
	if endianness != m.EndianUnset {
		wordType = "uint64_t"
	}

	e.writeIndent()
	e.printf("const %s %s_data_[] {\n", wordType, name)
	e.printf("%s\n", payload.Text)
	e.writeIndent()
	e.printf("};\n")
	e.writeIndent()
	e.printf("const %s %s{ reinterpret_cast<const %s*>(%s_data_), %d };\n",
		e.resourceType, name, e.settings.DataType, name, payload.Size)
}
