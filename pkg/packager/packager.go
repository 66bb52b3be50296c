package packager

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/assemble"
	"github.com/arthur-debert/wspackager/pkg/display"
	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/filesystem"
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/arthur-debert/wspackager/pkg/manifest"
	"github.com/arthur-debert/wspackager/pkg/plan"
	"github.com/arthur-debert/wspackager/pkg/prepack"
	"github.com/arthur-debert/wspackager/pkg/report"
	"github.com/arthur-debert/wspackager/pkg/resolver"
	"github.com/arthur-debert/wspackager/pkg/style"
	"github.com/arthur-debert/wspackager/pkg/treefilter"
	"github.com/arthur-debert/wspackager/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configures a Packager
type Options struct {
	// Source is the working root every declared path is relative to
	Source afero.Fs
	// Output receives the final archive. Defaults to Source.
	Output afero.Fs
	// Root is the absolute location of the working root on Output. When
	// empty, destinations are used on Output as given.
	Root string
	// Manifest is the manifest path, always shipped first
	Manifest string

	CompressionLevel int
	CleanupOnFailure bool

	// Printer shows the plan before packaging unless the run is quiet
	Printer display.Printer
	// Stdout receives the success line
	Stdout io.Writer
}

// Result describes a finished or failed run
type Result struct {
	Filename  string
	Plan      types.PackagingPlan
	Artifacts []string
	// Leftover lists nested archives cleanup could not remove
	Leftover  []string
	Size      int64
	HumanSize string
	State     types.State
	History   []types.State
}

// Packager turns a declaration list into a single archive
type Packager struct {
	decls      []types.FileDeclaration
	info       types.PackageInfo
	opts       Options
	classifier *plan.Classifier
	logger     zerolog.Logger
}

// New creates a Packager. Declarations are deduplicated once here, with
// intermediate declarations taking precedence.
func New(decls []types.FileDeclaration, info types.PackageInfo, opts Options) *Packager {
	if opts.Output == nil {
		opts.Output = opts.Source
	}
	if opts.Manifest == "" {
		opts.Manifest = manifest.DefaultPath
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}

	unique := plan.Dedupe(decls)
	return &Packager{
		decls:      unique,
		info:       info,
		opts:       opts,
		classifier: plan.NewClassifier(unique),
		logger:     logging.GetLogger("packager"),
	}
}

// Declarations returns the deduplicated declarations
func (p *Packager) Declarations() []types.FileDeclaration {
	return p.decls
}

// Classifier returns the intermediate classifier built from the declarations
func (p *Packager) Classifier() *plan.Classifier {
	return p.classifier
}

// Plan resolves the declarations and builds the packaging plan without
// touching the filesystem.
func (p *Packager) Plan() (types.PackagingPlan, error) {
	pl, _, err := p.resolve()
	return pl, err
}

// resolve builds the plan together with a classifier bound to the
// resolved glob matches.
func (p *Packager) resolve() (types.PackagingPlan, *plan.Classifier, error) {
	resolutions, err := resolver.ResolveAll(p.opts.Source, p.decls)
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrResolve) {
			err = errors.Wrap(err, errors.ErrResolve, "failed to resolve declarations")
		}
		return types.PackagingPlan{}, nil, err
	}
	return plan.Build(p.opts.Manifest, resolutions), p.classifier.Bind(resolutions), nil
}

// Run packages everything into destination. Placeholders in destination
// are expanded from the package info.
func (p *Packager) Run(destination string, quiet bool) (*Result, error) {
	filename := ResolveDestination(destination, p.info)
	result := &Result{Filename: filename}
	target := p.outputPath(filename)

	run := &runState{result: result, logger: p.logger}
	run.enter(types.StateResolving)

	done := logging.LogOperationStart(p.logger, "resolve")
	pl, classifier, err := p.resolve()
	done()
	if err != nil {
		return run.fail(err)
	}
	result.Plan = pl
	run.enter(types.StatePlanBuilt)

	if !quiet && p.opts.Printer != nil {
		if err := p.opts.Printer.Print(filename, pl, classifier); err != nil {
			p.logger.Warn().Err(err).Msg("Failed to print package tree")
		}
	}

	run.enter(types.StatePrepackaging)
	pp := prepack.New(p.opts.Source, classifier)
	pp.RemovePartial = p.opts.CleanupOnFailure

	done = logging.LogOperationStart(p.logger, "prepackage")
	artifacts, err := pp.Run(pl)
	done()
	result.Artifacts = artifacts
	if err != nil {
		return run.fail(err)
	}

	run.enter(types.StateAssembling)
	filter := treefilter.New(pl, classifier)
	if rel, ok := p.insideRoot(filename, target); ok {
		filter.Exclude(rel)
	}

	asm := &assemble.Assembler{
		Source:           p.opts.Source,
		Output:           p.opts.Output,
		CompressionLevel: p.opts.CompressionLevel,
	}

	done = logging.LogOperationStart(p.logger, "assemble")
	err = asm.Assemble(target, filter)
	done()
	if err != nil {
		if p.opts.CleanupOnFailure {
			result.Artifacts = prepack.Cleanup(p.opts.Source, artifacts)
		}
		return run.fail(err)
	}

	run.enter(types.StateCleaningUp)
	result.Leftover = prepack.Cleanup(p.opts.Source, artifacts)
	for _, artifact := range result.Leftover {
		style.Warning(p.opts.Stdout, "Could not remove %s", artifact)
	}

	size, err := report.FileSize(p.opts.Output, target)
	if err != nil {
		p.logger.Warn().Err(err).Str("path", target).Msg("Failed to read package size")
	}
	result.Size = size
	result.HumanSize = report.FormatSize(size)

	run.enter(types.StateDone)

	if !quiet {
		style.Success(p.opts.Stdout, "Package generated (%s)", result.HumanSize)
	}

	p.logger.Info().
		Str("package", target).
		Int64("size", size).
		Msg("Package generated")

	return result, nil
}

func (p *Packager) outputPath(filename string) string {
	if p.opts.Root == "" {
		return filename
	}
	return filesystem.OutputPath(p.opts.Root, filename)
}

// insideRoot returns the working-root-relative path of the destination when
// the destination lives inside the working root.
func (p *Packager) insideRoot(filename, target string) (string, bool) {
	if p.opts.Root == "" {
		if filepath.IsAbs(filename) {
			return "", false
		}
		return filepath.ToSlash(filename), true
	}

	rel, err := filepath.Rel(p.opts.Root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
