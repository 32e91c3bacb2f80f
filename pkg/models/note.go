package models

import (
	"path"
	"strings"
)

// NoteExtension is the file extension of notes eligible for companion folders.
const NoteExtension = ".md"

// Note represents a note file inside a vault.
type Note struct {
	Path       string `json:"path"`        // Vault-relative, slash separated
	Basename   string `json:"basename"`    // File name without the final extension
	ParentPath string `json:"parent_path"` // "" or "/" for the vault root
}

// NoteFromPath builds a Note from a vault-relative path.
func NoteFromPath(p string) *Note {
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/")
	dir, file := path.Split(p)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		dir = "/"
	}

	return &Note{
		Path:       p,
		Basename:   strings.TrimSuffix(file, path.Ext(file)),
		ParentPath: dir,
	}
}

// IsNote reports whether the path carries the note extension.
func IsNote(p string) bool {
	return strings.HasSuffix(p, NoteExtension)
}

// IsNote reports whether the note is eligible for companion-folder resolution.
func (n *Note) IsNote() bool {
	return n != nil && IsNote(n.Path)
}
