package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindWalksUpToManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "calc"
`)
	nested := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, ManifestName), path)
}

func TestFindReportsMissingWithoutError(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadRequiresPackageName(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ManifestName)
	writeFile(t, path, `
[package]
version = "0.1.0"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[package].name")
}

func TestLoadRejectsNonSourceMain(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ManifestName)
	writeFile(t, path, `
[package]
name = "calc"

[build]
main = "main.txt"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[build].main")
}

func TestMainPathResolvesAgainstRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "calc"

[build]
main = "src/main.bas"
`)
	writeFile(t, filepath.Join(root, "src", "main.bas"), "Module Main\nEnd Module\n")

	manifest, ok, err := LoadFrom(root)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "calc", manifest.Config.Package.Name)

	mainPath, err := manifest.MainPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "main.bas"), mainPath)
}

func TestMainPathErrorsWhenFileMissing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "calc"

[build]
main = "missing.bas"
`)
	manifest, err := Load(filepath.Join(root, ManifestName))
	require.NoError(t, err)
	_, err = manifest.MainPath()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestSourceFilesCollectsAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "calc"
`)
	writeFile(t, filepath.Join(root, "b.bas"), "")
	writeFile(t, filepath.Join(root, "lib", "a.bas"), "")
	writeFile(t, filepath.Join(root, "readme.md"), "")
	writeFile(t, filepath.Join(root, ".cache", "c.bas"), "")

	manifest, err := Load(filepath.Join(root, ManifestName))
	require.NoError(t, err)

	files, err := manifest.SourceFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(root, "b.bas"), files[0])
	assert.Equal(t, filepath.Join(root, "lib", "a.bas"), files[1])
}

func TestSourceFilesHonorsConfiguredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "calc"

[build]
sources = ["src"]
`)
	writeFile(t, filepath.Join(root, "src", "main.bas"), "")
	writeFile(t, filepath.Join(root, "scratch.bas"), "")

	manifest, err := Load(filepath.Join(root, ManifestName))
	require.NoError(t, err)

	files, err := manifest.SourceFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "src", "main.bas"), files[0])
}
