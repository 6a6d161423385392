package mdhtml

import (
	"html"
	"strings"

	"github.com/rgonek/tufte-sidenotes/sidenote"
)

// renderDocument serializes a transformed document to an HTML fragment.
func renderDocument(doc sidenote.Document) string {
	return renderBlocks(doc.Blocks, true)
}

// renderBlocks emits exactly one newline between blocks; the comment gluing
// in note markup relies on that separator count. An empty Plain placeholder
// marks a former paragraph boundary: a note-free text run at such a boundary
// is wrapped back into <p>, while note-bearing runs stay bare so the note
// markup can abut them. topLevel treats the sequence start as a boundary,
// since the transform strips the document's leading placeholder.
func renderBlocks(blocks []sidenote.Block, topLevel bool) string {
	parts := make([]string, 0, len(blocks))

	for i, block := range blocks {
		if plain, ok := block.(sidenote.Plain); ok && len(plain.Inlines) > 0 {
			atBoundary := (topLevel && i == 0) || (i > 0 && isPlaceholder(blocks[i-1]))
			noteAdjacent := isGluedRun(plain.Inlines) || (i+1 < len(blocks) && isRawBlock(blocks[i+1]))
			if atBoundary && !noteAdjacent {
				parts = append(parts, "<p>"+renderInlines(plain.Inlines)+"</p>")
				continue
			}
		}
		parts = append(parts, renderBlock(block))
	}

	return strings.Join(parts, "\n")
}

func renderBlock(block sidenote.Block) string {
	switch typed := block.(type) {
	case sidenote.Paragraph:
		return "<p>" + renderInlines(typed.Inlines) + "</p>"
	case sidenote.Plain:
		return renderInlines(typed.Inlines)
	case sidenote.Raw:
		return typed.Text
	case sidenote.OrderedList:
		return renderList("ol", typed.Items)
	case sidenote.BulletList:
		return renderList("ul", typed.Items)
	case sidenote.Opaque:
		if carried, ok := typed.Node.(string); ok {
			return carried
		}
		return ""
	default:
		return ""
	}
}

func renderList(tag string, items [][]sidenote.Block) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(renderBlocks(item, false))
		b.WriteString("</li>")
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
	return b.String()
}

func renderInlines(inlines []sidenote.Inline) string {
	var b strings.Builder
	for _, inline := range inlines {
		switch typed := inline.(type) {
		case sidenote.Text:
			b.WriteString(html.EscapeString(typed.Value))
		case sidenote.RawInline:
			b.WriteString(typed.Text)
		case sidenote.Note:
			// Notes nested inside another note's body carry no margin
			// controls of their own; their content renders inline.
			b.WriteString(fragmentText(typed.Blocks))
		case sidenote.OpaqueInline:
			if carried, ok := typed.Node.(string); ok {
				b.WriteString(carried)
			}
		}
	}
	return b.String()
}

// renderFragment is the sub-renderer handed to the sidenote transform. It
// satisfies the FragmentRenderer signature; fragment assembly itself cannot
// fail.
func renderFragment(blocks []sidenote.Block) (string, error) {
	return fragmentText(blocks), nil
}

// fragmentText renders note blocks on one line. Margin notes render inline,
// so paragraph boundaries become double line breaks and every newline
// collapses to a space, including newlines inside multi-line raw HTML
// inlines: the transform treats everything after the output's first line
// break as unusable.
func fragmentText(blocks []sidenote.Block) string {
	parts := make([]string, 0, len(blocks))

	for _, block := range blocks {
		var part string
		switch typed := block.(type) {
		case sidenote.Paragraph:
			part = renderInlines(typed.Inlines)
		case sidenote.Plain:
			part = renderInlines(typed.Inlines)
		default:
			part = renderBlock(block)
		}
		part = flattenLine(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "<br/><br/>")
}

func flattenLine(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

func isPlaceholder(block sidenote.Block) bool {
	plain, ok := block.(sidenote.Plain)
	return ok && len(plain.Inlines) == 0
}

func isRawBlock(block sidenote.Block) bool {
	_, ok := block.(sidenote.Raw)
	return ok
}

// isGluedRun reports whether the run borders rendered note markup. The
// transform marks such runs with a trailing comment-start or a leading
// comment-end raw inline.
func isGluedRun(inlines []sidenote.Inline) bool {
	if len(inlines) == 0 {
		return false
	}
	if raw, ok := inlines[0].(sidenote.RawInline); ok && raw.Text == "-->" {
		return true
	}
	if raw, ok := inlines[len(inlines)-1].(sidenote.RawInline); ok && raw.Text == "<!--" {
		return true
	}
	return false
}
