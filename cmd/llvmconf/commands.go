package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/danmuck/llvmconf"
	"github.com/danmuck/llvmconf/internal/manifest"
	"github.com/danmuck/llvmconf/words"
)

const (
	formatTOML = "toml"
	formatJSON = "json"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "llvmconf",
		Short:         "query the local llvm-config installation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("dispatch")
		},
	}
	root.AddCommand(
		newVersionCommand(),
		newPathsCommand(),
		newFlagsCommand(),
		newLibsCommand(),
		newComponentsCommand(),
		newSnapshotCommand(),
		newCheckCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the LLVM version string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := llvmconf.Version()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "print installation paths and identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			queries := []struct {
				label string
				query func() (string, error)
			}{
				{"version", llvmconf.Version},
				{"prefix", llvmconf.Prefix},
				{"src-root", llvmconf.SrcRoot},
				{"obj-root", llvmconf.ObjRoot},
				{"bin-dir", llvmconf.BinDir},
				{"include-dir", llvmconf.IncludeDir},
				{"lib-dir", llvmconf.LibDir},
				{"cmake-dir", llvmconf.CMakeDir},
			}
			for _, q := range queries {
				v, err := q.query()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", q.label, v)
			}
			return nil
		},
	}
}

func newFlagsCommand() *cobra.Command {
	kinds := map[string]func() (*words.Scanner, error){
		"cpp": llvmconf.CppFlags,
		"c":   llvmconf.CFlags,
		"cxx": llvmconf.CxxFlags,
		"ld":  llvmconf.LdFlags,
	}
	return &cobra.Command{
		Use:       "flags {cpp|c|cxx|ld}...",
		Short:     "print compiler or linker flags, one per line",
		ValidArgs: []string{"cpp", "c", "cxx", "ld"},
		Args:      cobra.MatchAll(cobra.MinimumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range args {
				if err := printWords(cmd, kinds[kind]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newLibsCommand() *cobra.Command {
	var system, files, names bool
	cmd := &cobra.Command{
		Use:   "libs",
		Short: "print link libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case names:
				v, err := llvmconf.LibNames()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			case system:
				return printWords(cmd, llvmconf.SystemLibs)
			case files:
				return printWords(cmd, llvmconf.LibFiles)
			default:
				return printWords(cmd, llvmconf.Libs)
			}
		},
	}
	cmd.Flags().BoolVar(&system, "system", false, "system libraries needed to link against LLVM")
	cmd.Flags().BoolVar(&files, "files", false, "fully qualified library filenames")
	cmd.Flags().BoolVar(&names, "names", false, "bare library names, as one line")
	cmd.MarkFlagsMutuallyExclusive("system", "files", "names")
	return cmd
}

func newComponentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "print every buildable component, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printWords(cmd, llvmconf.Components)
		},
	}
}

func newSnapshotCommand() *cobra.Command {
	var format, outPath string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "capture every query result as TOML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatTOML && format != formatJSON {
				return fmt.Errorf("invalid format %q (want %s or %s)", format, formatTOML, formatJSON)
			}
			snap, err := llvmconf.TakeSnapshot()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if format == formatJSON {
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return err
				}
				buf.Write(data)
				buf.WriteByte('\n')
			} else if err := toml.NewEncoder(&buf).Encode(snap); err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, buf.Bytes(), 0o644)
			}
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", formatTOML, "output format (toml or json)")
	cmd.Flags().StringVar(&outPath, "out", "", "write to a file instead of stdout")
	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check MANIFEST",
		Short: "verify the local toolchain against a pinned manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			snap, err := llvmconf.TakeSnapshot()
			if err != nil {
				return err
			}
			diff := m.Diff(snap)
			for _, mm := range diff {
				fmt.Fprintln(cmd.OutOrStdout(), mm.String())
			}
			if len(diff) > 0 {
				return &checkFailedError{count: len(diff)}
			}
			log.Debug().Str("manifest", args[0]).Msg("toolchain check passed")
			return nil
		},
	}
}

func printWords(cmd *cobra.Command, query func() (*words.Scanner, error)) error {
	sc, err := query()
	if err != nil {
		return err
	}
	for sc.Scan() {
		fmt.Fprintln(cmd.OutOrStdout(), sc.Text())
	}
	return nil
}
