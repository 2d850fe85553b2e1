package llvmconf

import "github.com/danmuck/llvmconf/words"

// Snapshot holds the result of every query in one record. Tokenized queries
// are materialized to slices; LibNames stays a whole string, matching the
// query surface.
type Snapshot struct {
	Version    string   `toml:"version" json:"version"`
	Prefix     string   `toml:"prefix" json:"prefix"`
	SrcRoot    string   `toml:"src_root" json:"src_root"`
	ObjRoot    string   `toml:"obj_root" json:"obj_root"`
	BinDir     string   `toml:"bin_dir" json:"bin_dir"`
	IncludeDir string   `toml:"include_dir" json:"include_dir"`
	LibDir     string   `toml:"lib_dir" json:"lib_dir"`
	CMakeDir   string   `toml:"cmake_dir" json:"cmake_dir"`
	CppFlags   []string `toml:"cppflags" json:"cppflags"`
	CFlags     []string `toml:"cflags" json:"cflags"`
	CxxFlags   []string `toml:"cxxflags" json:"cxxflags"`
	LdFlags    []string `toml:"ldflags" json:"ldflags"`
	SystemLibs []string `toml:"system_libs" json:"system_libs"`
	Libs       []string `toml:"libs" json:"libs"`
	LibNames   string   `toml:"libnames" json:"libnames"`
	LibFiles   []string `toml:"libfiles" json:"libfiles"`
	Components []string `toml:"components" json:"components"`
}

// TakeSnapshot runs every query once, in query-surface order, and stops at
// the first failure. There is no partial snapshot and no caching; each call
// re-runs the tool per field.
func TakeSnapshot() (*Snapshot, error) {
	var snap Snapshot
	steps := []func() error{
		stringStep(&snap.Version, Version),
		stringStep(&snap.Prefix, Prefix),
		stringStep(&snap.SrcRoot, SrcRoot),
		stringStep(&snap.ObjRoot, ObjRoot),
		stringStep(&snap.BinDir, BinDir),
		stringStep(&snap.IncludeDir, IncludeDir),
		stringStep(&snap.LibDir, LibDir),
		stringStep(&snap.CMakeDir, CMakeDir),
		wordsStep(&snap.CppFlags, CppFlags),
		wordsStep(&snap.CFlags, CFlags),
		wordsStep(&snap.CxxFlags, CxxFlags),
		wordsStep(&snap.LdFlags, LdFlags),
		wordsStep(&snap.SystemLibs, SystemLibs),
		wordsStep(&snap.Libs, Libs),
		stringStep(&snap.LibNames, LibNames),
		wordsStep(&snap.LibFiles, LibFiles),
		wordsStep(&snap.Components, Components),
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}

func stringStep(dst *string, query func() (string, error)) func() error {
	return func() error {
		v, err := query()
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func wordsStep(dst *[]string, query func() (*words.Scanner, error)) func() error {
	return func() error {
		sc, err := query()
		if err != nil {
			return err
		}
		for sc.Scan() {
			*dst = append(*dst, sc.Text())
		}
		return nil
	}
}
