// Package project locates and loads basiclang.toml, the project
// manifest that names a package and tells the tools which sources
// belong to it.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the tools look for when run inside a project.
const ManifestName = "basiclang.toml"

// SourceExt is the extension of compilable source files.
const SourceExt = ".bas"

// Manifest is a loaded project manifest together with where it was found.
type Manifest struct {
	Path   string // absolute path of the manifest file
	Root   string // directory containing it
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// BuildConfig is optional. Main names the entry source file relative to
// the project root; Sources lists directories to scan for sources and
// defaults to the project root.
type BuildConfig struct {
	Main    string   `toml:"main"`
	Sources []string `toml:"sources"`
}

// Find walks from startDir up to the filesystem root looking for a
// manifest. It reports false, not an error, when none exists.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses and validates one manifest file.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	if main := strings.TrimSpace(cfg.Build.Main); main != "" && filepath.Ext(main) != SourceExt {
		return nil, fmt.Errorf("%s: [build].main must be a %s file", path, SourceExt)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

// LoadFrom finds and loads the manifest governing startDir. The second
// result is false when no manifest exists anywhere above startDir.
func LoadFrom(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	manifest, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return manifest, true, nil
}

// MainPath resolves [build].main against the project root and verifies
// the file exists. It errors when the manifest declares no entry file.
func (m *Manifest) MainPath() (string, error) {
	main := strings.TrimSpace(m.Config.Build.Main)
	if main == "" {
		return "", fmt.Errorf("%s: missing [build].main", m.Path)
	}
	mainPath := filepath.Join(m.Root, filepath.FromSlash(main))
	info, err := os.Stat(mainPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: [build].main path does not exist: %s", m.Path, mainPath)
		}
		return "", fmt.Errorf("%s: failed to stat [build].main: %w", m.Path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: [build].main must be a %s file, not a directory", m.Path, SourceExt)
	}
	return mainPath, nil
}

// SourceFiles collects every source file under the configured source
// directories, sorted by path. Hidden directories are skipped.
func (m *Manifest) SourceFiles() ([]string, error) {
	dirs := m.Config.Build.Sources
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	seen := make(map[string]bool)
	var files []string
	for _, dir := range dirs {
		root := filepath.Join(m.Root, filepath.FromSlash(dir))
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != SourceExt || seen[path] {
				return nil
			}
			seen[path] = true
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan sources: %w", m.Path, err)
		}
	}
	sort.Strings(files)
	return files, nil
}
