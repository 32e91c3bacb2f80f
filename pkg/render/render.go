// Package render expands companion-folder code blocks inside a note.
package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/grovetools/companion/pkg/frontmatter"
)

// Language is the info string of the code blocks this package expands.
const Language = "companion-folder"

// Block is a fenced companion-folder code block. Start and End delimit the
// whole block, fences included. Prefix is what precedes the opening fence on
// its line: list indentation or blockquote markers.
type Block struct {
	Start  int
	End    int
	Prefix string
}

// BlockRenderer produces the replacement text for a block in the note at sourcePath.
type BlockRenderer func(ctx context.Context, sourcePath string) string

// FindBlocks returns the companion-folder blocks of a markdown document in
// source order, including blocks nested in lists and blockquotes.
func FindBlocks(source []byte) []Block {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if fcb.Info != nil && string(fcb.Language(source)) == Language {
			blocks = append(blocks, blockBounds(source, fcb))
		}
		return ast.WalkSkipChildren, nil
	})

	return blocks
}

func blockBounds(source []byte, fcb *ast.FencedCodeBlock) Block {
	start := lineStart(source, fcb.Info.Segment.Start)
	prefix := string(source[start:fenceStart(source, start, fcb.Info.Segment.Start)])
	pos := lineEnd(source, fcb.Info.Segment.Start)

	if lines := fcb.Lines(); lines.Len() > 0 {
		pos = lines.At(lines.Len() - 1).Stop
		if pos > 0 && source[pos-1] != '\n' {
			pos = lineEnd(source, pos)
		}
	}

	// Closing fence, absent when the block runs to the end of its container.
	if pos < len(source) && isFence(source[pos:lineEnd(source, pos)], prefix) {
		pos = lineEnd(source, pos)
	}

	return Block{Start: start, End: pos, Prefix: prefix}
}

// Note returns the note body with its frontmatter removed and every
// companion-folder block replaced by the output of render. Each output line
// carries the block's prefix so nested blocks stay inside their container.
func Note(ctx context.Context, content []byte, sourcePath string, render BlockRenderer) string {
	source := []byte(frontmatter.Body(string(content)))

	var out bytes.Buffer
	last := 0
	for _, b := range FindBlocks(source) {
		out.Write(source[last:b.Start])
		prefix := b.Prefix
		for _, line := range strings.Split(render(ctx, sourcePath), "\n") {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteByte('\n')
			prefix = continuation(b.Prefix)
		}
		last = b.End
	}
	out.Write(source[last:])

	return out.String()
}

// continuation turns an opening-line prefix into the prefix of the lines
// after it: list markers become blanks, blockquote markers stay.
func continuation(prefix string) string {
	return strings.Map(func(r rune) rune {
		if r == '>' || r == '\t' {
			return r
		}
		return ' '
	}, prefix)
}

func lineStart(source []byte, pos int) int {
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the index just past the newline ending the line at pos.
func lineEnd(source []byte, pos int) int {
	if i := bytes.IndexByte(source[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(source)
}

// fenceStart walks back from the info string over blanks and fence
// characters to where the opening fence begins.
func fenceStart(source []byte, lineStart, info int) int {
	pos := info
	for pos > lineStart && (source[pos-1] == ' ' || source[pos-1] == '\t') {
		pos--
	}
	for pos > lineStart && (source[pos-1] == '`' || source[pos-1] == '~') {
		pos--
	}
	return pos
}

func isFence(line []byte, prefix string) bool {
	line = bytes.TrimPrefix(line, []byte(strings.TrimRight(prefix, " ")))
	line = bytes.TrimLeft(line, " ")
	return bytes.HasPrefix(line, []byte("```")) || bytes.HasPrefix(line, []byte("~~~"))
}
