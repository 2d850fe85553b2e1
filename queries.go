package llvmconf

import "github.com/danmuck/llvmconf/words"

// One parameterless function per llvm-config flag. None of them cache; each
// call re-invokes the tool.

// Version returns the LLVM version string.
func Version() (string, error) { return stdout("--version") }

// Prefix returns the installation prefix.
func Prefix() (string, error) { return stdout("--prefix") }

// SrcRoot returns the source root LLVM was built from.
func SrcRoot() (string, error) { return stdout("--src-root") }

// ObjRoot returns the object root used to build LLVM.
func ObjRoot() (string, error) { return stdout("--obj-root") }

// BinDir returns the directory holding LLVM executables.
func BinDir() (string, error) { return stdout("--bin-dir") }

// IncludeDir returns the directory holding LLVM headers.
func IncludeDir() (string, error) { return stdout("--include-dir") }

// LibDir returns the directory holding LLVM libraries.
func LibDir() (string, error) { return stdout("--lib-dir") }

// CMakeDir returns the directory holding LLVM cmake modules.
func CMakeDir() (string, error) { return stdout("--cmake-dir") }

// CppFlags yields C preprocessor flags for files that include LLVM headers.
func CppFlags() (*words.Scanner, error) { return stdoutWords("--cppflags") }

// CFlags yields C compiler flags for files that include LLVM headers.
func CFlags() (*words.Scanner, error) { return stdoutWords("--cflags") }

// CxxFlags yields C++ compiler flags for files that include LLVM headers.
func CxxFlags() (*words.Scanner, error) { return stdoutWords("--cxxflags") }

// LdFlags yields linker flags.
func LdFlags() (*words.Scanner, error) { return stdoutWords("--ldflags") }

// SystemLibs yields system libraries needed to link against LLVM components.
func SystemLibs() (*words.Scanner, error) { return stdoutWords("--system-libs") }

// Libs yields libraries needed to link against LLVM components.
func Libs() (*words.Scanner, error) { return stdoutWords("--libs") }

// LibNames returns bare library names for in-tree builds, as one string.
func LibNames() (string, error) { return stdout("--libnames") }

// LibFiles yields fully qualified library filenames for makefile depends.
func LibFiles() (*words.Scanner, error) { return stdoutWords("--libfiles") }

// Components yields every component LLVM can build.
func Components() (*words.Scanner, error) { return stdoutWords("--components") }
