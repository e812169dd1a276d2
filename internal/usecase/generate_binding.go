package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/dotdm/cdm/internal/domain/config"
	"github.com/dotdm/cdm/internal/domain/models"
)

// GenerateBindingParams contains parameters for generating bindings
type GenerateBindingParams struct {
	Packages []string
	// All selects every dependency declared in the manifest
	All      bool
	StartDir string
	// OutDir defaults to the configured bindings directory
	OutDir string
	// DryRun renders bindings without writing them
	DryRun bool
}

// GenerateBindingResult contains the generated bindings
type GenerateBindingResult struct {
	ManifestPath string
	Bindings     []*models.Binding
	// Files holds the written path of each binding, in order; empty on dry runs
	Files []string
}

// GenerateBinding resolves packages and emits a source binding for each
type GenerateBinding struct {
	config    *config.RuntimeConfig
	manifests ManifestRepository
	resolver  *ResolveReference
	loader    InterfaceLoader
	generator BindingGenerator
	writer    BindingWriter
	sink      ProgressSink
	log       *slog.Logger
}

// NewGenerateBinding creates a new GenerateBinding use case
func NewGenerateBinding(
	cfg *config.RuntimeConfig,
	manifests ManifestRepository,
	resolver *ResolveReference,
	loader InterfaceLoader,
	generator BindingGenerator,
	writer BindingWriter,
	sink ProgressSink,
	log *slog.Logger,
) *GenerateBinding {
	return &GenerateBinding{
		config:    cfg,
		manifests: manifests,
		resolver:  resolver,
		loader:    loader,
		generator: generator,
		writer:    writer,
		sink:      sink,
		log:       log.With("component", "GenerateBinding"),
	}
}

// Run executes the generate binding use case
func (uc *GenerateBinding) Run(ctx context.Context, params GenerateBindingParams) (*GenerateBindingResult, error) {
	startDir := params.StartDir
	if startDir == "" {
		startDir = uc.config.WorkDir
	}
	manifestPath, err := uc.manifests.Locate(ctx, startDir)
	if err != nil {
		return nil, err
	}
	manifest, err := uc.manifests.Load(ctx, manifestPath)
	if err != nil {
		return nil, err
	}

	packages := params.Packages
	if params.All {
		packages = lo.Uniq(lo.Map(manifest.DependencyList(), func(d models.Dependency, _ int) string {
			return d.Package
		}))
	}
	if len(packages) == 0 {
		return nil, errors.New("no packages to bind")
	}

	outDir := params.OutDir
	if outDir == "" {
		outDir = uc.config.BindingsDir
	}

	result := &GenerateBindingResult{ManifestPath: manifestPath}
	owners := make(map[string]string, len(packages))

	for i, pkg := range packages {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   StageBinding,
			Current: i + 1,
			Total:   len(packages),
			Message: fmt.Sprintf("Generating binding for %s", pkg),
			Spinner: true,
		})

		binding, err := uc.generate(ctx, manifest, pkg)
		if err != nil {
			return nil, err
		}

		if other, ok := owners[binding.Identifier]; ok && other != pkg {
			return nil, fmt.Errorf("packages '%s' and '%s' both map to binding '%s'", other, pkg, binding.Identifier)
		}
		owners[binding.Identifier] = pkg
		result.Bindings = append(result.Bindings, binding)

		if params.DryRun {
			continue
		}
		path, err := uc.writer.WriteBinding(ctx, outDir, binding)
		if err != nil {
			return nil, err
		}
		uc.log.Debug("wrote binding", "package", pkg, "path", path)
		result.Files = append(result.Files, path)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompleted,
		Current: len(packages),
		Total:   len(packages),
		Message: fmt.Sprintf("Generated %d binding(s)", len(result.Bindings)),
	})

	return result, nil
}

func (uc *GenerateBinding) generate(ctx context.Context, manifest *models.Manifest, pkg string) (*models.Binding, error) {
	ref, _, err := uc.resolver.ResolveIn(ctx, manifest, pkg)
	if err != nil {
		return nil, err
	}

	iface, err := uc.loader.Load(ctx, ref.ArtifactPath)
	if err != nil {
		return nil, err
	}

	return uc.generator.Generate(ctx, *ref, iface)
}
