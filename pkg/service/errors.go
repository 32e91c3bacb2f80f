package service

import "errors"

var (
	// ErrNotANote means the path lacks the note extension; resolution short-circuits.
	ErrNotANote = errors.New("not a note")
	// ErrNoCompanionFolder means nothing is at the resolved path, or a file is.
	ErrNoCompanionFolder = errors.New("no companion folder present for this note")
	// ErrEmptyFolder is a display state: the companion folder has no children.
	ErrEmptyFolder = errors.New("companion folder is empty")
	// ErrRevealTargetUnresolvable means no note was available to act on.
	ErrRevealTargetUnresolvable = errors.New("no note to reveal a companion folder for")
)
