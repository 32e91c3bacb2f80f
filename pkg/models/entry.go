package models

// EntryKind tells files and folders apart.
type EntryKind string

const (
	KindFile   EntryKind = "file"
	KindFolder EntryKind = "folder"
)

// Entry represents a single node in the vault tree. It can be a file or a folder.
type Entry struct {
	Kind EntryKind `json:"kind" yaml:"kind"`
	Path string    `json:"path" yaml:"path"`
	Name string    `json:"name" yaml:"name"`

	// Children holds the direct children of a folder in vault enumeration order.
	Children []*Entry `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsFolder reports whether the entry is a folder.
func (e *Entry) IsFolder() bool {
	return e != nil && e.Kind == KindFolder
}

// ChildNames returns the names of the direct children, in order.
func (e *Entry) ChildNames() []string {
	names := make([]string, 0, len(e.Children))
	for _, c := range e.Children {
		names = append(names, c.Name)
	}
	return names
}
