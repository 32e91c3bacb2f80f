package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantProps Properties
		wantBody  string
	}{
		{
			name:      "title and tags",
			content:   "---\ntitle: Test Note\ntags: [test, example]\n---\n\n# Test Content\n",
			wantProps: Properties{Title: "Test Note", Tags: []string{"test", "example"}},
			wantBody:  "\n# Test Content\n",
		},
		{
			name:     "no frontmatter",
			content:  "# Just a title\n\nSome content.",
			wantBody: "# Just a title\n\nSome content.",
		},
		{
			name:      "unknown keys ignored",
			content:   "---\ntitle: Only Title\naliases: [x]\n---\nbody",
			wantProps: Properties{Title: "Only Title"},
			wantBody:  "body",
		},
		{
			name:      "windows line endings",
			content:   "---\r\ntitle: CRLF\r\n---\r\nbody",
			wantProps: Properties{Title: "CRLF"},
			wantBody:  "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, body, err := Parse(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.wantProps, props)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	props, body, err := Parse("---\ntitle: [invalid\n---\n\nBody")
	require.Error(t, err)
	assert.Equal(t, Properties{}, props)
	assert.Equal(t, "\nBody", body)
}

func TestSplit(t *testing.T) {
	raw, body, ok := Split("---\ntitle: x\n---\ntext")
	assert.True(t, ok)
	assert.Equal(t, "title: x", raw)
	assert.Equal(t, "text", body)

	_, body, ok = Split("no fm")
	assert.False(t, ok)
	assert.Equal(t, "no fm", body)
}

func TestBody(t *testing.T) {
	assert.Equal(t, "text", Body("---\ntitle: x\n---\ntext"))
	assert.Equal(t, "text", Body("---\ntitle: [broken\n---\ntext"))
	assert.Equal(t, "no fm", Body("no fm"))
	assert.Equal(t, "", Body("---\ntitle: x\n---"))
}
