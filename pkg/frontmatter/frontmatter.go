// Package frontmatter reads the YAML properties block at the top of a note.
package frontmatter

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

var pattern = regexp.MustCompile(`(?s)^---\r?\n(.*?)\r?\n---(?:\r?\n|$)(.*)`)

// Properties are the note properties reported alongside a companion folder.
type Properties struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// Split separates the raw frontmatter block from the body. ok is false, and
// body is content, when the note has no frontmatter.
func Split(content string) (raw, body string, ok bool) {
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return "", content, false
	}
	return m[1], m[2], true
}

// Parse decodes the frontmatter of content and returns it with the body.
// A note without frontmatter yields zero Properties.
func Parse(content string) (Properties, string, error) {
	raw, body, ok := Split(content)
	if !ok {
		return Properties{}, body, nil
	}

	var props Properties
	if err := yaml.Unmarshal([]byte(raw), &props); err != nil {
		return Properties{}, body, fmt.Errorf("decode frontmatter: %w", err)
	}
	return props, body, nil
}

// Body returns content without its frontmatter. Malformed YAML is still
// stripped.
func Body(content string) string {
	_, body, _ := Split(content)
	return body
}
