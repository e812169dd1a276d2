package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotdm/cdm/internal/domain"
	"github.com/dotdm/cdm/internal/domain/models"
)

// ManifestFileNames are the manifest names probed in each directory, in order.
var ManifestFileNames = []string{"cdm.json", "cdm.yaml", "cdm.yml"}

// FindManifest walks from start up to the filesystem root and returns the
// absolute path of the nearest manifest. The result does not depend on the
// process working directory when start is absolute.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}
	origin := dir

	for {
		for _, name := range ManifestFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", domain.ManifestNotFoundErr{StartDir: origin}
		}
		dir = parent
	}
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*models.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ManifestNotFoundErr{StartDir: filepath.Dir(path)}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseManifest(path, data)
}

// ParseManifest decodes data as JSON, or as YAML when path has a .yaml/.yml
// extension. Missing sections decode as empty maps.
func ParseManifest(path string, data []byte) (*models.Manifest, error) {
	var manifest models.Manifest

	var err error
	if isYAML(path) {
		err = decodeYAML(data, &manifest)
	} else {
		err = decodeJSON(data, &manifest)
	}
	if err != nil {
		return nil, domain.ManifestMalformedErr{Path: path, Err: err}
	}

	manifest.Normalize()
	return &manifest, nil
}

// WriteManifest writes m to path in the format implied by its extension.
func WriteManifest(path string, m *models.Manifest) error {
	m.Normalize()

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(m)
	} else {
		data, err = json.MarshalIndent(m, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func decodeJSON(data []byte, out *models.Manifest) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level object")
	}
	return nil
}

func decodeYAML(data []byte, out *models.Manifest) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	return nil
}
