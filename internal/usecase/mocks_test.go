package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/dotdm/cdm/internal/domain/models"
	"github.com/dotdm/cdm/internal/registry"
	"github.com/dotdm/cdm/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockManifestRepository is a mock implementation of ManifestRepository
type MockManifestRepository struct {
	mock.Mock
}

func (m *MockManifestRepository) Locate(ctx context.Context, startDir string) (string, error) {
	args := m.Called(ctx, startDir)
	return args.String(0), args.Error(1)
}

func (m *MockManifestRepository) Load(ctx context.Context, path string) (*models.Manifest, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manifest), args.Error(1)
}

func (m *MockManifestRepository) Save(ctx context.Context, path string, manifest *models.Manifest) error {
	args := m.Called(ctx, path, manifest)
	return args.Error(0)
}

// MockPointerReader is a mock implementation of VersionPointerReader
type MockPointerReader struct {
	mock.Mock
}

func (m *MockPointerReader) ReadLatest(ctx context.Context, targetID, pkg string) (uint64, error) {
	args := m.Called(ctx, targetID, pkg)
	return args.Get(0).(uint64), args.Error(1)
}

// MockArtifactLocator is a mock implementation of ArtifactLocator
type MockArtifactLocator struct {
	mock.Mock
}

func (m *MockArtifactLocator) LocateArtifact(ctx context.Context, targetID, pkg string, version uint64) (string, error) {
	args := m.Called(ctx, targetID, pkg, version)
	return args.String(0), args.Error(1)
}

// MockArtifactCache is a mock implementation of ArtifactCache
type MockArtifactCache struct {
	mock.Mock
}

func (m *MockArtifactCache) SaveContract(ctx context.Context, entry usecase.CacheEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactCache) ListVersions(ctx context.Context, targetID, pkg string) ([]uint64, error) {
	args := m.Called(ctx, targetID, pkg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockArtifactCache) ListPackages(ctx context.Context) ([]models.CachedPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CachedPackage), args.Error(1)
}

// MockInterfaceLoader is a mock implementation of InterfaceLoader
type MockInterfaceLoader struct {
	mock.Mock
}

func (m *MockInterfaceLoader) Load(ctx context.Context, path string) (*models.InterfaceDescription, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterfaceDescription), args.Error(1)
}

func (m *MockInterfaceLoader) Parse(path string, data []byte) (*models.InterfaceDescription, error) {
	args := m.Called(path, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterfaceDescription), args.Error(1)
}

// MockBindingGenerator is a mock implementation of BindingGenerator
type MockBindingGenerator struct {
	mock.Mock
}

func (m *MockBindingGenerator) Generate(ctx context.Context, ref models.ResolvedReference, iface *models.InterfaceDescription) (*models.Binding, error) {
	args := m.Called(ctx, ref, iface)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Binding), args.Error(1)
}

// MockBindingWriter is a mock implementation of BindingWriter
type MockBindingWriter struct {
	mock.Mock
}

func (m *MockBindingWriter) WriteBinding(ctx context.Context, dir string, binding *models.Binding) (string, error) {
	args := m.Called(ctx, dir, binding)
	return args.String(0), args.Error(1)
}

// MockContractSelector is a mock implementation of ContractSelector
type MockContractSelector struct {
	mock.Mock
}

func (m *MockContractSelector) SelectContract(ctx context.Context, names []string, prompt string) (string, error) {
	args := m.Called(ctx, names, prompt)
	return args.String(0), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

// fakeRegistryClient runs calls directly against an in-memory registry.
type fakeRegistryClient struct {
	mu  sync.Mutex
	reg *registry.Registry
}

type memStore map[common.Hash][]byte

func (s memStore) Get(key common.Hash) ([]byte, bool) {
	v, ok := s[key]
	return v, ok
}

func (s memStore) Set(key common.Hash, value []byte) { s[key] = value }

func newFakeRegistryClient() *fakeRegistryClient {
	return &fakeRegistryClient{reg: registry.New(memStore{})}
}

func (f *fakeRegistryClient) PublishLatest(_ context.Context, caller common.Address, name string, addr common.Address, uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reg.PublishLatest(caller, name, addr, uri)
}

func (f *fakeRegistryClient) GetAddress(_ context.Context, name string) (common.Address, error) {
	return f.reg.GetAddress(name), nil
}

func (f *fakeRegistryClient) GetMetadataURI(_ context.Context, name string) (string, error) {
	return f.reg.GetMetadataURI(name), nil
}

func (f *fakeRegistryClient) GetOwner(_ context.Context, name string) (common.Address, error) {
	return f.reg.GetOwner(name), nil
}

func (f *fakeRegistryClient) GetVersionCount(_ context.Context, name string) (uint32, error) {
	return f.reg.GetVersionCount(name), nil
}

func (f *fakeRegistryClient) GetContractCount(_ context.Context) (uint32, error) {
	return f.reg.GetContractCount(), nil
}

func (f *fakeRegistryClient) GetContractNameAt(_ context.Context, index uint32) (string, error) {
	return f.reg.GetContractNameAt(index), nil
}

func (f *fakeRegistryClient) GetAddressAtVersion(_ context.Context, name string, version uint32) (common.Address, error) {
	return f.reg.GetAddressAtVersion(name, version), nil
}

func (f *fakeRegistryClient) GetMetadataURIAtVersion(_ context.Context, name string, version uint32) (string, error) {
	return f.reg.GetMetadataURIAtVersion(name, version), nil
}

var (
	_ usecase.ManifestRepository   = (*MockManifestRepository)(nil)
	_ usecase.VersionPointerReader = (*MockPointerReader)(nil)
	_ usecase.ArtifactLocator      = (*MockArtifactLocator)(nil)
	_ usecase.ArtifactCache        = (*MockArtifactCache)(nil)
	_ usecase.InterfaceLoader      = (*MockInterfaceLoader)(nil)
	_ usecase.BindingGenerator     = (*MockBindingGenerator)(nil)
	_ usecase.BindingWriter        = (*MockBindingWriter)(nil)
	_ usecase.ContractSelector     = (*MockContractSelector)(nil)
	_ usecase.RegistryClient       = (*fakeRegistryClient)(nil)
)
