// Package domain contains the manifest compiler and the C++ code generator.
package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"res2cpp.dev/pkg/res2cpp/internal/adapter"
	"res2cpp.dev/pkg/res2cpp/internal/controller"
	"res2cpp.dev/pkg/res2cpp/internal/diff"
	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

// GenerateArgs contains the arguments for generating the artifacts.
type GenerateArgs struct {
	Settings m.Settings
	Threads  int
	Quiet    bool
}

// ListArgs contains the arguments for listing the manifest's resources.
type ListArgs struct {
	Manifest m.Path
	Format   controller.ListFormat
}

// DiffArgs contains the arguments for previewing changes.
type DiffArgs struct {
	Settings m.Settings
	Threads  int
	// Force diffs the source even when it is not stale.
	Force bool
}

// Workflow drives one manifest compilation end to end.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) (m.GenerateResult, error)
	List(ctx context.Context, args ListArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.HexEncoder
	adapter.StalenessChecker
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	encoder adapter.HexEncoder,
	checker adapter.StalenessChecker,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter:  fsAdapter,
		HexEncoder:       encoder,
		StalenessChecker: checker,
		UI:               ui,
	}
}

// Generate updates the header when its content changed and rewrites the
// source when it is stale. Nothing is written unless the whole manifest
// compiles.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (m.GenerateResult, error) {
	settings := args.Settings.WithDefaultOutputs()

	resources, err := w.compile(settings.ConfigFile)
	if err != nil {
		return m.GenerateResult{}, err
	}

	result := m.GenerateResult{
		Resources:  len(resources),
		HeaderFile: settings.HeaderFile,
		SourceFile: settings.SourceFile,
	}

	header, err := renderHeader(settings, resources)
	if err != nil {
		return result, err
	}

	result.HeaderWritten, err = w.UpdateFile(settings.HeaderFile, header)
	if err != nil {
		return result, err
	}

	if result.HeaderWritten || w.IsStale(settings.ConfigFile, settings.HeaderFile, settings.SourceFile, resources) {
		source, err := w.renderSource(ctx, settings, resources, args.Threads)
		if err != nil {
			return result, err
		}

		if err := w.WriteFile(settings.SourceFile, source); err != nil {
			return result, err
		}

		result.SourceWritten = true
	}

	slog.Info("generated",
		"manifest", settings.ConfigFile,
		"resources", result.Resources,
		"header_written", result.HeaderWritten,
		"source_written", result.SourceWritten)

	if args.Quiet {
		return result, nil
	}

	if err := w.DisplayGenerateResult(ctx, result); err != nil {
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

// List compiles the manifest and displays its resources.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	resources, err := w.compile(args.Manifest)
	if err != nil {
		return err
	}

	if err := w.DisplayResources(ctx, DescribeResources(resources), args.Format); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Diff renders both artifacts in memory and displays how they differ from
// the files on disk.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	settings := args.Settings.WithDefaultOutputs()

	resources, err := w.compile(settings.ConfigFile)
	if err != nil {
		return err
	}

	header, err := renderHeader(settings, resources)
	if err != nil {
		return err
	}

	headerDiff, err := w.diffFile(settings.HeaderFile, header)
	if err != nil {
		return err
	}

	diffs := []m.FileDiff{headerDiff}
	sourceDiff := m.FileDiff{Path: settings.SourceFile, Skipped: true}

	stale := headerDiff.Patch != "" ||
		w.IsStale(settings.ConfigFile, settings.HeaderFile, settings.SourceFile, resources)

	if args.Force || stale {
		source, err := w.renderSource(ctx, settings, resources, args.Threads)
		if err != nil {
			return err
		}

		if sourceDiff, err = w.diffFile(settings.SourceFile, source); err != nil {
			return err
		}
	}

	diffs = append(diffs, sourceDiff)

	if err := w.DisplayDiff(ctx, diffs); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) compile(manifest m.Path) ([]m.Resource, error) {
	text, err := w.ReadFile(manifest)
	if err != nil {
		slog.Error("failed to read manifest", "path", manifest, "error", err)
		return nil, fmt.Errorf("opening manifest '%s' failed: %w", filepath.ToSlash(string(manifest)), err)
	}

	return CompileManifest(m.Path(filepath.Dir(string(manifest))), string(text))
}

func (w *workflow) diffFile(path m.Path, content []byte) (m.FileDiff, error) {
	var current []byte

	if w.Exists(path) {
		data, err := w.ReadFile(path)
		if err != nil {
			return m.FileDiff{}, err
		}

		current = data
	}

	name := filepath.ToSlash(string(path))

	return m.FileDiff{Path: path, Patch: diff.Unified(name, current, content, diff.DefaultContext)}, nil
}

func renderHeader(settings m.Settings, resources []m.Resource) ([]byte, error) {
	var buf bytes.Buffer

	if err := NewGenerator(settings, nil).GenerateHeader(&buf, resources); err != nil {
		return nil, fmt.Errorf("generate header: %w", err)
	}

	return buf.Bytes(), nil
}

func (w *workflow) renderSource(ctx context.Context, settings m.Settings, resources []m.Resource, threads int) ([]byte, error) {
	payloads, err := w.preparePayloads(ctx, settings, resources, threads)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	if err := NewGenerator(settings, payloads).GenerateSource(&buf, resources); err != nil {
		return nil, fmt.Errorf("generate source: %w", err)
	}

	return buf.Bytes(), nil
}

// preparePayloads encodes every distinct resource file once, using up to
// threads workers. The generator then consumes them in sorted order.
func (w *workflow) preparePayloads(ctx context.Context, settings m.Settings, resources []m.Resource, threads int) (*payloadCache, error) {
	cache := &payloadCache{
		wordSize:     settings.Endianness.WordSize(),
		littleEndian: settings.Endianness != m.EndianBig,
		payloads:     make(map[m.Path]m.Payload),
		fallback:     w.HexEncoder,
	}

	paths := make([]m.Path, 0, len(resources))
	seen := make(map[m.Path]struct{}, len(resources))

	for _, resource := range resources {
		if _, ok := seen[resource.Path]; ok {
			continue
		}

		seen[resource.Path] = struct{}{}
		paths = append(paths, resource.Path)
	}

	if threads < 1 {
		threads = 1
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			payload, err := w.Encode(path, cache.wordSize, cache.littleEndian)
			if err != nil {
				slog.Error("failed to encode resource", "path", path, "error", err)
				return err
			}

			cache.store(path, payload)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("encoded resources", "files", len(paths), "threads", threads)

	return cache, nil
}

// payloadCache serves pre-encoded payloads to the generator.
type payloadCache struct {
	mu           sync.Mutex
	wordSize     int
	littleEndian bool
	payloads     map[m.Path]m.Payload
	fallback     Encoder
}

func (c *payloadCache) store(path m.Path, payload m.Payload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.payloads[path] = payload
}

// Encode implements Encoder.
func (c *payloadCache) Encode(path m.Path, wordSize int, littleEndian bool) (m.Payload, error) {
	c.mu.Lock()
	payload, ok := c.payloads[path]
	c.mu.Unlock()

	if ok && wordSize == c.wordSize && littleEndian == c.littleEndian {
		return payload, nil
	}

	return c.fallback.Encode(path, wordSize, littleEndian)
}

// DescribeResources lists resources with C++ qualified names and the
// resource whose embedded content each one reuses.
func DescribeResources(resources []m.Resource) []m.ResourceInfo {
	infos := make([]m.ResourceInfo, 0, len(resources))
	firstByPath := make(map[m.Path]string, len(resources))

	for _, resource := range resources {
		info := m.ResourceInfo{
			ID:   QualifyID(resource.ID),
			Path: resource.Path,
		}

		if first, ok := firstByPath[resource.Path]; ok {
			info.SharedWith = first
		} else {
			firstByPath[resource.Path] = info.ID
		}

		infos = append(infos, info)
	}

	return infos
}
