package mdhtml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/rgonek/tufte-sidenotes/sidenote"
)

func TestRenderFragmentJoinsParagraphs(t *testing.T) {
	fragment, err := renderFragment([]sidenote.Block{
		sidenote.Paragraph{Inlines: []sidenote.Inline{sidenote.Text{Value: "first"}}},
		sidenote.Paragraph{Inlines: []sidenote.Inline{sidenote.Text{Value: "second"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, "first<br/><br/>second", fragment)
}

func TestRenderFragmentFlattensCarriedBlocks(t *testing.T) {
	fragment, err := renderFragment([]sidenote.Block{
		sidenote.Opaque{Node: "<pre><code>a\nb\n</code></pre>"},
	})
	require.NoError(t, err)

	// Margin notes render on one line; the transform cannot use anything
	// past the output's first line break.
	assert.NotContains(t, fragment, "\n")
	assert.Equal(t, "<pre><code>a b </code></pre>", fragment)
}

func TestRenderFragmentFlattensMultilineRawInline(t *testing.T) {
	// An inline HTML tag may legally break across lines; the line break
	// travels into the raw inline and must not survive into the fragment,
	// or the transform would cut the note body at it.
	fragment, err := renderFragment([]sidenote.Block{
		sidenote.Plain{Inlines: []sidenote.Inline{
			sidenote.Text{Value: "a "},
			sidenote.RawInline{Format: "html", Text: "<b\ntitle=\"t\">"},
			sidenote.Text{Value: "x"},
			sidenote.RawInline{Format: "html", Text: "</b>"},
		}},
	})
	require.NoError(t, err)

	assert.NotContains(t, fragment, "\n")
	assert.Equal(t, `a <b title="t">x</b>`, fragment)
}

func TestRenderInlinesNestedNoteBody(t *testing.T) {
	out := renderInlines([]sidenote.Inline{
		sidenote.Text{Value: "see "},
		sidenote.Note{Blocks: []sidenote.Block{
			sidenote.Plain{Inlines: []sidenote.Inline{sidenote.Text{Value: "nested"}}},
		}},
	})

	assert.Equal(t, "see nested", out)
}

func TestRenderFragmentEscapesText(t *testing.T) {
	fragment, err := renderFragment([]sidenote.Block{
		sidenote.Plain{Inlines: []sidenote.Inline{sidenote.Text{Value: "a < b & c"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, "a &lt; b &amp; c", fragment)
}

func TestRenderBlocksSeparator(t *testing.T) {
	out := renderBlocks([]sidenote.Block{
		sidenote.Raw{Format: "html", Text: "one"},
		sidenote.Raw{Format: "html", Text: "two"},
		sidenote.Raw{Format: "html", Text: "three"},
	}, true)

	// Exactly one newline between adjacent blocks: the comment gluing in
	// note markup depends on this count.
	assert.Equal(t, "one\ntwo\nthree", out)
}

// elementsByTag collects all elements with the given tag from a parsed tree.
func elementsByTag(node *html.Node, tag string) []*html.Node {
	var found []*html.Node
	if node.Type == html.ElementNode && node.Data == tag {
		found = append(found, node)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		found = append(found, elementsByTag(child, tag)...)
	}
	return found
}

func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func TestConvertedMarkupStructure(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.Convert([]byte("Hello [^1]\n\n[^1]: World\n"))
	require.NoError(t, err)

	root, err := html.Parse(strings.NewReader(result.HTML))
	require.NoError(t, err)

	labels := elementsByTag(root, "label")
	require.Len(t, labels, 1)
	assert.Equal(t, "sn-0", attrValue(labels[0], "for"))
	assert.Equal(t, "margin-toggle sidenote-number", attrValue(labels[0], "class"))

	inputs := elementsByTag(root, "input")
	require.Len(t, inputs, 1)
	assert.Equal(t, "checkbox", attrValue(inputs[0], "type"))
	assert.Equal(t, "sn-0", attrValue(inputs[0], "id"))
	assert.Equal(t, "margin-toggle", attrValue(inputs[0], "class"))

	asides := elementsByTag(root, "aside")
	require.Len(t, asides, 1)
	assert.Equal(t, "sidenote", attrValue(asides[0], "class"))
	assert.Equal(t, "note", attrValue(asides[0], "role"))
	require.NotNil(t, asides[0].FirstChild)
	assert.Equal(t, "World", asides[0].FirstChild.Data)
}
