package fspath

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkingDirectory returns the process's current directory.
func WorkingDirectory() (DirectoryPath, error) {
	wd, err := os.Getwd()
	if err != nil {
		return DirectoryPath{}, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return ParseDir(wd)
}

// UserConfigDirectory returns the per-user configuration directory:
// XDG_CONFIG_HOME when set, the home directory otherwise.
func UserConfigDirectory() (DirectoryPath, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = os.Getenv("HOME")
	}
	if dir == "" {
		return DirectoryPath{}, fmt.Errorf("neither XDG_CONFIG_HOME nor HOME is set")
	}
	return ParseDir(dir)
}

// GlobalConfigDirectory returns the system-wide configuration directory.
func GlobalConfigDirectory() DirectoryPath {
	d := RootDirectory()
	d.Enter("etc")
	return d
}

// DocumentDirectory returns the user's home directory.
func DocumentDirectory() (DirectoryPath, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return DirectoryPath{}, fmt.Errorf("home directory is undefined")
	}
	return ParseDir(home)
}

// TemporaryDirectory returns the directory for scratch files: TMPDIR
// when set, /tmp otherwise.
func TemporaryDirectory() (DirectoryPath, error) {
	dir := os.Getenv("TMPDIR")
	if dir == "" {
		dir = "/tmp"
	}
	return ParseDir(dir)
}

// UserConfigFile locates a configuration file under the user config
// directory, inside a project subdirectory when project is non-empty.
func UserConfigFile(project, filename string) (FilePath, error) {
	dir, err := UserConfigDirectory()
	if err != nil {
		return FilePath{}, err
	}
	if project != "" {
		dir.Enter(project)
	}
	return dir.Select(filename), nil
}

// GlobalConfigFile locates a configuration file under the system config
// directory, inside a project subdirectory when project is non-empty.
func GlobalConfigFile(project, filename string) FilePath {
	dir := GlobalConfigDirectory()
	if project != "" {
		dir.Enter(project)
	}
	return dir.Select(filename)
}

// CreateTemporaryFile creates a uniquely named file inside the given
// directory and returns its path along with the open handle. The caller
// owns the handle.
func CreateTemporaryFile(dir DirectoryPath) (FilePath, *os.File, error) {
	f, err := os.CreateTemp(dir.AsAbsoluteString(), "")
	if err != nil {
		return FilePath{}, nil, fmt.Errorf("failed to create temporary file in %s: %w", dir.AsAbsoluteString(), err)
	}
	path, err := ParseFile(filepath.ToSlash(f.Name()))
	if err != nil {
		f.Close()
		return FilePath{}, nil, err
	}
	return path, f, nil
}
