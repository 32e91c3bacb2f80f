package models

// Settings is the persisted configuration object.
type Settings struct {
	// CompanionFolderLocation is empty (companion folder next to the note) or a
	// vault-relative folder under which the note's subfolders are mirrored.
	CompanionFolderLocation string `json:"companionFolderLocation"`
}

// DefaultSettings places companion folders directly next to their notes.
var DefaultSettings = Settings{
	CompanionFolderLocation: "",
}
