package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/companion/pkg/models"
)

func newDiskVault(t *testing.T) (*Disk, string) {
	t.Helper()
	dir := t.TempDir()
	v, err := NewDisk(dir)
	require.NoError(t, err)
	return v, v.Root()
}

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte("# "+rel), 0644))
}

func TestNewDiskRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := NewDisk(file)
	assert.Error(t, err)

	_, err = NewDisk(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestDiskGetEntryByPath(t *testing.T) {
	ctx := context.Background()
	v, root := newDiskVault(t)

	writeFile(t, root, "Projects/todo.md")
	writeFile(t, root, "Projects/todo/b.png")
	writeFile(t, root, "Projects/todo/a.txt")
	writeFile(t, root, "Projects/todo/.DS_Store")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Projects", "todo", "nested"), 0755))

	t.Run("folder with children", func(t *testing.T) {
		e, err := v.GetEntryByPath(ctx, "Projects/todo")
		require.NoError(t, err)
		require.NotNil(t, e)

		assert.Equal(t, models.KindFolder, e.Kind)
		assert.Equal(t, "Projects/todo", e.Path)
		assert.Equal(t, "todo", e.Name)
		assert.Equal(t, []string{"a.txt", "b.png", "nested"}, e.ChildNames())
		assert.Equal(t, "Projects/todo/nested", e.Children[2].Path)
		assert.True(t, e.Children[2].IsFolder())
	})

	t.Run("file", func(t *testing.T) {
		e, err := v.GetEntryByPath(ctx, "Projects/todo.md")
		require.NoError(t, err)
		require.NotNil(t, e)
		assert.Equal(t, models.KindFile, e.Kind)
		assert.Nil(t, e.Children)
	})

	t.Run("missing", func(t *testing.T) {
		e, err := v.GetEntryByPath(ctx, "Projects/nope")
		require.NoError(t, err)
		assert.Nil(t, e)
	})

	t.Run("below a file", func(t *testing.T) {
		e, err := v.GetEntryByPath(ctx, "Projects/todo.md/x")
		require.NoError(t, err)
		assert.Nil(t, e)
	})

	t.Run("root", func(t *testing.T) {
		e, err := v.GetEntryByPath(ctx, "")
		require.NoError(t, err)
		require.NotNil(t, e)
		assert.True(t, e.IsFolder())
		assert.Equal(t, []string{"Projects"}, e.ChildNames())
	})
}

func TestDiskCreateFolder(t *testing.T) {
	ctx := context.Background()
	v, root := newDiskVault(t)

	require.NoError(t, v.CreateFolder(ctx, "Attachments/Notes/Sub/entry"))
	info, err := os.Stat(filepath.Join(root, "Attachments", "Notes", "Sub", "entry"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	err = v.CreateFolder(ctx, "Attachments/Notes/Sub/entry")
	assert.ErrorIs(t, err, ErrExist)

	writeFile(t, root, "plain.md")
	err = v.CreateFolder(ctx, "plain.md/inner")
	assert.ErrorIs(t, err, ErrNotFolder)
}

func TestDiskPaths(t *testing.T) {
	v, root := newDiskVault(t)

	assert.Equal(t, filepath.Join(root, "a", "b"), v.AbsPath("a/b/"))
	assert.Equal(t, root, v.AbsPath(""))

	rel, ok := v.RelPath(filepath.Join(root, "x", "y.md"))
	assert.True(t, ok)
	assert.Equal(t, "x/y.md", rel)

	_, ok = v.RelPath(filepath.Dir(root))
	assert.False(t, ok)
}

func TestDiskCanceledContext(t *testing.T) {
	v, _ := newDiskVault(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := v.GetEntryByPath(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, v.CreateFolder(ctx, "x"), context.Canceled)
}

func TestMemoryVault(t *testing.T) {
	ctx := context.Background()
	v := NewMemory()

	require.NoError(t, v.AddFile("todo/z.png"))
	require.NoError(t, v.AddFile("todo/a.png"))
	require.NoError(t, v.AddFile("todo.md"))

	e, err := v.GetEntryByPath(ctx, "todo")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.True(t, e.IsFolder())
	assert.Equal(t, []string{"z.png", "a.png"}, e.ChildNames())

	assert.ErrorIs(t, v.AddFile("todo.md"), ErrExist)
	assert.ErrorIs(t, v.CreateFolder(ctx, "todo"), ErrExist)
	assert.ErrorIs(t, v.CreateFolder(ctx, "todo.md/x"), ErrNotFolder)

	require.NoError(t, v.CreateFolder(ctx, "a/b/c"))
	e, err = v.GetEntryByPath(ctx, "a/b")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, e.ChildNames())

	missing, err := v.GetEntryByPath(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Equal(t, "/a/b", v.AbsPath("a/b/"))
}

func TestImplementsVault(t *testing.T) {
	var _ Vault = (*Disk)(nil)
	var _ Vault = (*Memory)(nil)
}
