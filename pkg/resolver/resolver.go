// Package resolver derives the companion folder path of a note.
//
// Resolution is pure: the configured base location is passed in on every
// call and nothing touches the vault.
package resolver

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/grovetools/companion/pkg/models"
)

const separator = "/"

var spaceReplacer = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// Resolve maps a note path, the path of its parent folder and the configured
// base location to the vault-relative companion folder path. The boolean is
// false when notePath is not a note.
func Resolve(notePath, noteParentPath, base string) (string, bool) {
	if !models.IsNote(notePath) {
		return "", false
	}

	basename := Basename(notePath)
	subfolder := Subfolder(noteParentPath)

	if base == "" {
		return subfolder + basename, true
	}

	if !strings.HasSuffix(base, separator) {
		base += separator
	}
	return Normalize(base + subfolder + basename), true
}

// ResolveNote is Resolve for a models.Note.
func ResolveNote(note *models.Note, base string) (string, bool) {
	if note == nil {
		return "", false
	}
	return Resolve(note.Path, note.ParentPath, base)
}

// Basename returns the file name of notePath with only the final note
// extension removed, so "a.b.md" becomes "a.b".
func Basename(notePath string) string {
	name := path.Base(strings.ReplaceAll(notePath, "\\", separator))
	return strings.TrimSuffix(name, models.NoteExtension)
}

// Subfolder returns the parent folder with a trailing separator, or "" when
// the parent is the vault root.
func Subfolder(parentPath string) string {
	if isRoot(parentPath) {
		return ""
	}
	return strings.TrimSuffix(parentPath, separator) + separator
}

func isRoot(parentPath string) bool {
	switch parentPath {
	case "", separator, ".":
		return true
	}
	return false
}

// Normalize turns p into a canonical vault path: forward slashes only, no
// redundant separators, "." and ".." resolved without escaping the vault
// root, no leading or trailing separator, Unicode NFC.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", separator)
	p = spaceReplacer.Replace(p)

	// Rooting the path first keeps ".." from climbing above the vault.
	p = path.Clean(separator + p)
	p = strings.Trim(p, separator)

	return norm.NFC.String(p)
}
