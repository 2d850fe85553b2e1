package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/llvmconf"
	"github.com/danmuck/llvmconf/internal/manifest"
	"github.com/danmuck/llvmconf/internal/testutil/testlog"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toolchain.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesChecks(t *testing.T) {
	testlog.Start(t)

	m, err := manifest.Load(writeManifest(t, `
version = "18"
lib_dir = "/usr/lib/llvm-18/lib"
components = ["core", "support"]
`))
	require.NoError(t, err)
	assert.Equal(t, "18", m.Version)
	assert.Equal(t, "/usr/lib/llvm-18/lib", m.LibDir)
	assert.Equal(t, []string{"core", "support"}, m.Components)
	assert.Empty(t, m.Prefix)
}

func TestLoadRejectsEmptyManifest(t *testing.T) {
	testlog.Start(t)

	_, err := manifest.Load(writeManifest(t, "# nothing pinned\n"))
	require.ErrorIs(t, err, manifest.ErrNoChecks)
}

func TestLoadFailsOnMissingOrBrokenFiles(t *testing.T) {
	testlog.Start(t)

	_, err := manifest.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)

	_, err = manifest.Load(writeManifest(t, "version = [broken"))
	require.Error(t, err)
}

func TestVersionPrefixMatching(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name string
		want string
		got  string
		ok   bool
	}{
		{"exact", "18.1.8", "18.1.8", true},
		{"major prefix", "18", "18.1.8", true},
		{"minor prefix", "18.1", "18.1.8", true},
		{"not a dotted prefix", "18", "181.0", false},
		{"different major", "17", "18.1.8", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := manifest.Manifest{Version: tc.want}
			diff := m.Diff(&llvmconf.Snapshot{Version: tc.got})
			if tc.ok {
				assert.Empty(t, diff)
			} else {
				require.Len(t, diff, 1)
				assert.Equal(t, "version", diff[0].Field)
			}
		})
	}
}

func TestDiffChecksOnlySetFields(t *testing.T) {
	testlog.Start(t)

	snap := &llvmconf.Snapshot{
		Version:    "18.1.8",
		Prefix:     "/usr/lib/llvm-18",
		LibDir:     "/usr/lib/llvm-18/lib",
		Components: []string{"core", "support", "irreader"},
	}

	m := manifest.Manifest{LibDir: "/usr/lib/llvm-18/lib"}
	assert.Empty(t, m.Diff(snap), "unset fields must not be compared")

	m = manifest.Manifest{
		Prefix:     "/opt/llvm",
		Components: []string{"core", "mcjit"},
	}
	diff := m.Diff(snap)
	require.Len(t, diff, 2)
	assert.Equal(t, []string{
		`prefix: want "/opt/llvm", got "/usr/lib/llvm-18"`,
		`components: want "mcjit", got "absent"`,
	}, renderAll(diff))
}

func renderAll(diff []manifest.Mismatch) []string {
	out := make([]string, len(diff))
	for i, mm := range diff {
		out[i] = mm.String()
	}
	return out
}
