package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LatestMarker is the string written for a Latest version specifier.
const LatestMarker = "latest"

// Manifest is the project-level cdm.json declaration of deployment targets and their dependencies.
type Manifest struct {
	Targets      map[string]Target                 `json:"targets" yaml:"targets"`
	Dependencies map[string]map[string]VersionSpec `json:"dependencies" yaml:"dependencies"`
}

// NewManifest returns an empty manifest with initialised maps.
func NewManifest() *Manifest {
	return &Manifest{
		Targets:      make(map[string]Target),
		Dependencies: make(map[string]map[string]VersionSpec),
	}
}

// Normalize replaces nil maps with empty ones.
func (m *Manifest) Normalize() {
	if m.Targets == nil {
		m.Targets = make(map[string]Target)
	}
	if m.Dependencies == nil {
		m.Dependencies = make(map[string]map[string]VersionSpec)
	}
}

// TargetIDs returns every target identifier mentioned in targets or dependencies, sorted.
func (m *Manifest) TargetIDs() []string {
	seen := make(map[string]struct{}, len(m.Targets)+len(m.Dependencies))
	for id := range m.Targets {
		seen[id] = struct{}{}
	}
	for id := range m.Dependencies {
		seen[id] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dependency is one (target, package, specifier) entry of the manifest.
type Dependency struct {
	TargetID string
	Package  string
	Spec     VersionSpec
}

// DependencyList flattens the dependency maps, sorted by target then package.
func (m *Manifest) DependencyList() []Dependency {
	var deps []Dependency
	for targetID, pkgs := range m.Dependencies {
		for pkg, spec := range pkgs {
			deps = append(deps, Dependency{TargetID: targetID, Package: pkg, Spec: spec})
		}
	}
	sort.Slice(deps, func(i, j int) bool {
		if deps[i].TargetID != deps[j].TargetID {
			return deps[i].TargetID < deps[j].TargetID
		}
		return deps[i].Package < deps[j].Package
	})
	return deps
}

// SetDependency records pkg under targetID with the given specifier.
func (m *Manifest) SetDependency(targetID, pkg string, spec VersionSpec) {
	m.Normalize()
	if m.Dependencies[targetID] == nil {
		m.Dependencies[targetID] = make(map[string]VersionSpec)
	}
	m.Dependencies[targetID][pkg] = spec
}

// VersionSpec is either a pinned version number or a live "latest" marker.
// The zero value is Pinned(0).
type VersionSpec struct {
	version uint64
	latest  bool
}

// PinnedVersion returns a specifier for exactly version v.
func PinnedVersion(v uint64) VersionSpec {
	return VersionSpec{version: v}
}

// LatestVersion returns a specifier that follows the cache's latest pointer.
func LatestVersion() VersionSpec {
	return VersionSpec{latest: true}
}

// IsLatest reports whether the specifier must be resolved dynamically.
func (s VersionSpec) IsLatest() bool {
	return s.latest
}

// Pinned returns the pinned version and true, or 0 and false for Latest.
func (s VersionSpec) Pinned() (uint64, bool) {
	if s.latest {
		return 0, false
	}
	return s.version, true
}

func (s VersionSpec) String() string {
	if s.latest {
		return LatestMarker
	}
	return strconv.FormatUint(s.version, 10)
}

// ParseVersionSpec parses the command-line form: a decimal integer or "latest".
func ParseVersionSpec(raw string) (VersionSpec, error) {
	if raw == "" || raw == LatestMarker {
		return LatestVersion(), nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return VersionSpec{}, fmt.Errorf("invalid version %q: expected a non-negative integer or %q", raw, LatestMarker)
	}
	return PinnedVersion(v), nil
}

// UnmarshalJSON accepts a non-negative integer (pinned) or any string (latest).
func (s *VersionSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var marker string
		if err := json.Unmarshal(data, &marker); err != nil {
			return fmt.Errorf("invalid version specifier %s: %w", data, err)
		}
		*s = LatestVersion()
		return nil
	}
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version specifier %s: expected a non-negative integer or a string", data)
	}
	*s = PinnedVersion(v)
	return nil
}

// MarshalJSON writes pinned versions as numbers and latest as "latest".
func (s VersionSpec) MarshalJSON() ([]byte, error) {
	if s.latest {
		return json.Marshal(LatestMarker)
	}
	return []byte(strconv.FormatUint(s.version, 10)), nil
}

// UnmarshalYAML accepts an integer scalar (pinned) or any string scalar (latest).
func (s *VersionSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: invalid version specifier: expected a scalar", value.Line)
	}
	switch value.Tag {
	case "!!str":
		*s = LatestVersion()
		return nil
	case "!!int":
		var v uint64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("line %d: invalid version specifier %q: expected a non-negative integer", value.Line, value.Value)
		}
		*s = PinnedVersion(v)
		return nil
	default:
		return fmt.Errorf("line %d: invalid version specifier %q: expected an integer or a string", value.Line, value.Value)
	}
}

// MarshalYAML mirrors MarshalJSON.
func (s VersionSpec) MarshalYAML() (interface{}, error) {
	if s.latest {
		return LatestMarker, nil
	}
	return s.version, nil
}
