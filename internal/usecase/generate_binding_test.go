package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/usecase"
)

type bindingFixture struct {
	*resolveFixture
	loader    *MockInterfaceLoader
	generator *MockBindingGenerator
	writer    *MockBindingWriter
	sink      *MockProgressSink
	uc        *usecase.GenerateBinding
}

func newBindingFixture() *bindingFixture {
	f := &bindingFixture{
		resolveFixture: newResolveFixture(),
		loader:         new(MockInterfaceLoader),
		generator:      new(MockBindingGenerator),
		writer:         new(MockBindingWriter),
		sink:           &MockProgressSink{},
	}
	f.uc = usecase.NewGenerateBinding(f.cfg, f.manifests, f.resolver, f.loader, f.generator, f.writer, f.sink, discardLogger())
	return f
}

// expectPackage wires a pinned package through locator, loader and generator.
func (f *bindingFixture) expectPackage(ctx context.Context, targetID, pkg string, version uint64) *models.Binding {
	path := "/cache/" + targetID + "/" + pkg + "/abi.json"
	iface := &models.InterfaceDescription{Path: path, Raw: []byte(`[]`)}
	ref := models.ResolvedReference{TargetID: targetID, PackageName: pkg, Version: version, ArtifactPath: path}
	ident := models.DeriveIdentifier(pkg)
	binding := &models.Binding{Identifier: ident, PackageName: pkg, Reference: ref, Source: []byte("package " + ident + "\n")}

	f.artifacts.On("LocateArtifact", ctx, targetID, pkg, version).Return(path, nil)
	f.loader.On("Load", ctx, path).Return(iface, nil)
	f.generator.On("Generate", ctx, ref, iface).Return(binding, nil)
	return binding
}

func TestGenerateBinding(t *testing.T) {
	ctx := context.Background()
	manifest := manifestWith(map[string]map[string]models.VersionSpec{
		"aaaa": {"@polkadot/counter": models.PinnedVersion(1), "@polkadot/token": models.PinnedVersion(2)},
	})

	t.Run("writes requested packages", func(t *testing.T) {
		f := newBindingFixture()
		f.manifests.On("Locate", ctx, "/work/app/src").Return("/work/app/cdm.json", nil)
		f.manifests.On("Load", ctx, "/work/app/cdm.json").Return(manifest, nil)
		counter := f.expectPackage(ctx, "aaaa", "@polkadot/counter", 1)
		f.writer.On("WriteBinding", ctx, "/work/app/cdm_bindings", counter).Return("/work/app/cdm_bindings/counter/counter.go", nil)

		result, err := f.uc.Run(ctx, usecase.GenerateBindingParams{Packages: []string{"@polkadot/counter"}})
		require.NoError(t, err)

		require.Len(t, result.Bindings, 1)
		assert.Equal(t, "counter", result.Bindings[0].Identifier)
		assert.Equal(t, []string{"/work/app/cdm_bindings/counter/counter.go"}, result.Files)
		require.NotEmpty(t, f.sink.events)
		assert.Equal(t, usecase.StageCompleted, f.sink.events[len(f.sink.events)-1].Stage)
		f.writer.AssertExpectations(t)
	})

	t.Run("all dependencies dry run", func(t *testing.T) {
		f := newBindingFixture()
		f.manifests.On("Locate", ctx, "/work/app/src").Return("/work/app/cdm.json", nil)
		f.manifests.On("Load", ctx, "/work/app/cdm.json").Return(manifest, nil)
		f.expectPackage(ctx, "aaaa", "@polkadot/counter", 1)
		f.expectPackage(ctx, "aaaa", "@polkadot/token", 2)

		result, err := f.uc.Run(ctx, usecase.GenerateBindingParams{All: true, DryRun: true})
		require.NoError(t, err)

		require.Len(t, result.Bindings, 2)
		assert.Equal(t, "counter", result.Bindings[0].Identifier)
		assert.Equal(t, "token", result.Bindings[1].Identifier)
		assert.Empty(t, result.Files)
		f.writer.AssertNotCalled(t, "WriteBinding", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("custom output directory", func(t *testing.T) {
		f := newBindingFixture()
		f.manifests.On("Locate", ctx, "/work/app/src").Return("/work/app/cdm.json", nil)
		f.manifests.On("Load", ctx, "/work/app/cdm.json").Return(manifest, nil)
		token := f.expectPackage(ctx, "aaaa", "@polkadot/token", 2)
		f.writer.On("WriteBinding", ctx, "/out", token).Return("/out/token/token.go", nil)

		result, err := f.uc.Run(ctx, usecase.GenerateBindingParams{Packages: []string{"@polkadot/token"}, OutDir: "/out"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/out/token/token.go"}, result.Files)
	})

	t.Run("no packages", func(t *testing.T) {
		f := newBindingFixture()
		f.manifests.On("Locate", ctx, "/work/app/src").Return("/work/app/cdm.json", nil)
		f.manifests.On("Load", ctx, "/work/app/cdm.json").Return(models.NewManifest(), nil)

		_, err := f.uc.Run(ctx, usecase.GenerateBindingParams{All: true})
		assert.Error(t, err)
	})

	t.Run("unknown package fails fast", func(t *testing.T) {
		f := newBindingFixture()
		f.manifests.On("Locate", ctx, "/work/app/src").Return("/work/app/cdm.json", nil)
		f.manifests.On("Load", ctx, "/work/app/cdm.json").Return(manifest, nil)

		_, err := f.uc.Run(ctx, usecase.GenerateBindingParams{Packages: []string{"@polkadot/missing"}})
		assert.ErrorIs(t, err, domain.ErrPackageNotFound)
		f.loader.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("invalid interface", func(t *testing.T) {
		f := newBindingFixture()
		f.manifests.On("Locate", ctx, "/work/app/src").Return("/work/app/cdm.json", nil)
		f.manifests.On("Load", ctx, "/work/app/cdm.json").Return(manifest, nil)
		f.artifacts.On("LocateArtifact", ctx, "aaaa", "@polkadot/counter", uint64(1)).Return("/bad/abi.json", nil)
		f.loader.On("Load", ctx, "/bad/abi.json").Return(nil, errors.Join(domain.ErrInvalidInterface, errors.New("bad json")))

		_, err := f.uc.Run(ctx, usecase.GenerateBindingParams{Packages: []string{"@polkadot/counter"}})
		assert.ErrorIs(t, err, domain.ErrInvalidInterface)
	})

	t.Run("identifier collision", func(t *testing.T) {
		f := newBindingFixture()
		colliding := manifestWith(map[string]map[string]models.VersionSpec{
			"aaaa": {"@one/counter": models.PinnedVersion(1), "@two/counter": models.PinnedVersion(1)},
		})
		f.manifests.On("Locate", ctx, "/work/app/src").Return("/work/app/cdm.json", nil)
		f.manifests.On("Load", ctx, "/work/app/cdm.json").Return(colliding, nil)
		f.expectPackage(ctx, "aaaa", "@one/counter", 1)
		f.expectPackage(ctx, "aaaa", "@two/counter", 1)

		_, err := f.uc.Run(ctx, usecase.GenerateBindingParams{All: true, DryRun: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "both map to binding 'counter'")
	})
}
