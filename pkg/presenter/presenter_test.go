package presenter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenterPlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Notice("No companion folder present for this note")
	p.Success("created")
	p.Println("plain")
	p.Block("Companion Folder's (todo) content is:\n- a.png\n- b.png\n2 files in companion folder.\n")

	assert.Equal(t, "No companion folder present for this note\n", errOut.String())
	assert.Equal(t, "created\nplain\nCompanion Folder's (todo) content is:\n- a.png\n- b.png\n2 files in companion folder.\n", out.String())
}
