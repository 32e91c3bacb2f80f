// Package adapters turns host UI events into Companion Folder Service calls.
// Each adapter translates one trigger into one service call and keeps no
// logic of its own.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/companion/pkg/models"
	"github.com/grovetools/companion/pkg/service"
)

const (
	// Label is the title of every reveal trigger.
	Label = "Reveal Companion Folder"
	// IconID identifies the companion folder icon.
	IconID = "companion-folder"
	// CommandID is the command palette id.
	CommandID = "companion-plugin-reveal"
	// CodeBlockLanguage is the fenced code block language the renderer handles.
	CodeBlockLanguage = "companion-folder"
)

// Inline messages of the code block renderer.
const (
	MsgNotANote          = "File Ending is not .md"
	MsgNoCompanionFolder = "No companion folder present for this note"
)

// Adapters binds the presentation triggers to a service.
type Adapters struct {
	svc *service.Service
}

// New creates the adapters for svc.
func New(svc *service.Service) *Adapters {
	return &Adapters{svc: svc}
}

// FileMenu handles the file context menu item. The item is only offered for
// notes; shown is false when it would not be.
func (a *Adapters) FileMenu(ctx context.Context, path string) (folder string, shown bool, err error) {
	if !models.IsNote(path) {
		return "", false, nil
	}
	folder, err = a.svc.RevealOrCreate(ctx, models.NoteFromPath(path))
	return folder, true, err
}

// EditorMenu handles the editor context menu item for the note open in the editor.
func (a *Adapters) EditorMenu(ctx context.Context, activePath string) (string, error) {
	return a.svc.RevealOrCreate(ctx, activeNote(activePath))
}

// Ribbon handles a click on the ribbon icon.
func (a *Adapters) Ribbon(ctx context.Context, activePath string) (string, error) {
	return a.svc.RevealOrCreate(ctx, activeNote(activePath))
}

// Command handles the command palette entry.
func (a *Adapters) Command(ctx context.Context, activePath string) (string, error) {
	return a.svc.RevealOrCreate(ctx, activeNote(activePath))
}

// CodeBlock renders the companion-folder code block of the note at
// sourcePath as inline text. The heading shows the path of the folder the
// listing was read from.
func (a *Adapters) CodeBlock(ctx context.Context, sourcePath string) string {
	note := models.NoteFromPath(sourcePath)
	if !note.IsNote() {
		return MsgNotANote
	}

	folder, err := a.svc.Get(ctx, note)
	if err != nil {
		return MsgNoCompanionFolder
	}
	if len(folder.Children) == 0 {
		return fmt.Sprintf("Companion Folder (%s) is empty.", folder.Path)
	}

	names := folder.ChildNames()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Companion Folder's (%s) content is:\n", folder.Path))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("- %s\n", name))
	}
	sb.WriteString(fmt.Sprintf("%d files in companion folder.", len(names)))
	return sb.String()
}

func activeNote(path string) *models.Note {
	if path == "" {
		return nil
	}
	return models.NoteFromPath(path)
}
