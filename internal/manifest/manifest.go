package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/llvmconf"
)

// ErrNoChecks rejects a manifest that pins nothing at all.
var ErrNoChecks = errors.New("manifest: no checks defined")

// Manifest pins the toolchain facts a build pipeline expects. Zero-value
// fields are not checked.
type Manifest struct {
	Version    string   `toml:"version"`
	Prefix     string   `toml:"prefix"`
	BinDir     string   `toml:"bin_dir"`
	IncludeDir string   `toml:"include_dir"`
	LibDir     string   `toml:"lib_dir"`
	CMakeDir   string   `toml:"cmake_dir"`
	Components []string `toml:"components"`
}

// Load reads and validates a manifest file.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest load failed (%s): %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m Manifest) Validate() error {
	anyCheck := m.Version != "" || m.Prefix != "" || m.BinDir != "" ||
		m.IncludeDir != "" || m.LibDir != "" || m.CMakeDir != "" ||
		len(m.Components) > 0
	if !anyCheck {
		return ErrNoChecks
	}
	return nil
}

// Mismatch is one expectation the live toolchain does not meet.
type Mismatch struct {
	Field string
	Want  string
	Got   string
}

func (mm Mismatch) String() string {
	return fmt.Sprintf("%s: want %q, got %q", mm.Field, mm.Want, mm.Got)
}

// Diff compares the manifest against a snapshot of the live toolchain,
// checking only the fields the manifest sets. Listed components must each
// appear in the live component list; extra live components are fine.
func (m Manifest) Diff(snap *llvmconf.Snapshot) []Mismatch {
	var out []Mismatch
	if m.Version != "" && !versionMatches(m.Version, snap.Version) {
		out = append(out, Mismatch{Field: "version", Want: m.Version, Got: snap.Version})
	}
	paths := []struct {
		field string
		want  string
		got   string
	}{
		{"prefix", m.Prefix, snap.Prefix},
		{"bin_dir", m.BinDir, snap.BinDir},
		{"include_dir", m.IncludeDir, snap.IncludeDir},
		{"lib_dir", m.LibDir, snap.LibDir},
		{"cmake_dir", m.CMakeDir, snap.CMakeDir},
	}
	for _, p := range paths {
		if p.want != "" && p.want != p.got {
			out = append(out, Mismatch{Field: p.field, Want: p.want, Got: p.got})
		}
	}
	live := make(map[string]struct{}, len(snap.Components))
	for _, c := range snap.Components {
		live[c] = struct{}{}
	}
	for _, c := range m.Components {
		if _, ok := live[c]; !ok {
			out = append(out, Mismatch{Field: "components", Want: c, Got: "absent"})
		}
	}
	return out
}

// versionMatches accepts an exact match or a dotted prefix, so "18" accepts
// "18.1.8" but not "181.0".
func versionMatches(want, got string) bool {
	return want == got || strings.HasPrefix(got, want+".")
}
