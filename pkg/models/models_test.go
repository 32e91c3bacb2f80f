package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteFromPath(t *testing.T) {
	tests := []struct {
		path     string
		basename string
		parent   string
	}{
		{"todo.md", "todo", "/"},
		{"Projects/todo.md", "todo", "Projects"},
		{"Notes/Sub/entry.md", "entry", "Notes/Sub"},
		{"a.b.md", "a.b", "/"},
		{"/leading/slash.md", "slash", "leading"},
		{`win\style.md`, "style", "win"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			note := NoteFromPath(tt.path)
			assert.Equal(t, tt.basename, note.Basename)
			assert.Equal(t, tt.parent, note.ParentPath)
		})
	}
}

func TestIsNote(t *testing.T) {
	assert.True(t, NoteFromPath("todo.md").IsNote())
	assert.False(t, NoteFromPath("image.png").IsNote())
	assert.False(t, NoteFromPath("todo.MD").IsNote())

	var nilNote *Note
	assert.False(t, nilNote.IsNote())
}

func TestEntryChildNames(t *testing.T) {
	folder := &Entry{
		Kind: KindFolder,
		Path: "todo",
		Name: "todo",
		Children: []*Entry{
			{Kind: KindFile, Path: "todo/z.png", Name: "z.png"},
			{Kind: KindFolder, Path: "todo/a", Name: "a"},
		},
	}

	assert.True(t, folder.IsFolder())
	assert.Equal(t, []string{"z.png", "a"}, folder.ChildNames())
	assert.False(t, folder.Children[0].IsFolder())
	assert.Empty(t, (&Entry{Kind: KindFolder}).ChildNames())
}

func TestDefaultSettings(t *testing.T) {
	assert.Equal(t, "", DefaultSettings.CompanionFolderLocation)
}
