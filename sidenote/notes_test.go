package sidenote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleNoteDoc() Document {
	return Document{Blocks: []Block{
		Paragraph{Inlines: []Inline{textNote("ignored by static renderers")}},
	}}
}

func rawNoteText(t *testing.T, doc Document) string {
	t.Helper()

	for _, block := range doc.Blocks {
		if raw, ok := block.(Raw); ok {
			return raw.Text
		}
	}
	t.Fatal("no rendered note block in output")
	return ""
}

func TestRenderNoteSidenote(t *testing.T) {
	transformer := newTestTransformer(t, Config{RenderFragment: staticRenderer("Foo")})

	out, err := transformer.Transform(singleNoteDoc())
	require.NoError(t, err)

	assert.Equal(t,
		`--><label for="sn-0" class="margin-toggle sidenote-number"></label>`+
			`<input type="checkbox" id="sn-0" class="margin-toggle"/>`+
			`<aside class="sidenote" role="note">Foo</aside><!--`,
		rawNoteText(t, out))
}

func TestRenderNoteMarginnote(t *testing.T) {
	transformer := newTestTransformer(t, Config{RenderFragment: staticRenderer("{-} Important")})

	out, err := transformer.Transform(singleNoteDoc())
	require.NoError(t, err)

	text := rawNoteText(t, out)
	assert.Contains(t, text, `<aside class="marginnote" role="note">Important</aside>`)
	assert.Contains(t, text, `<label for="sn-0" class="margin-toggle">&#8853;</label>`)
	assert.NotContains(t, text, "sidenote-number")
}

func TestRenderNoteDropsWrapperLine(t *testing.T) {
	transformer := newTestTransformer(t, Config{RenderFragment: staticRenderer("<wrapper>\n{-} Foo")})

	out, err := transformer.Transform(singleNoteDoc())
	require.NoError(t, err)

	text := rawNoteText(t, out)
	assert.Contains(t, text, `<aside class="marginnote" role="note">Foo</aside>`)
	assert.NotContains(t, text, "<wrapper>")
}

func TestRenderNoteCustomTagAndRole(t *testing.T) {
	transformer := newTestTransformer(t, Config{
		TagType:        "span",
		TagRole:        "doc-note",
		RenderFragment: staticRenderer("Foo"),
	})

	out, err := transformer.Transform(singleNoteDoc())
	require.NoError(t, err)

	assert.Contains(t, rawNoteText(t, out), `<span class="sidenote" role="doc-note">Foo</span>`)
}

func TestRenderNoteMarginnotePrefixMustBeExact(t *testing.T) {
	// "{-}" without the trailing space is ordinary sidenote content.
	transformer := newTestTransformer(t, Config{RenderFragment: staticRenderer("{-}Foo")})

	out, err := transformer.Transform(singleNoteDoc())
	require.NoError(t, err)

	assert.Contains(t, rawNoteText(t, out), `<aside class="sidenote" role="note">{-}Foo</aside>`)
}

func TestRenderFailureAbortsTransform(t *testing.T) {
	cause := errors.New("unsupported nested content")
	transformer := newTestTransformer(t, Config{
		RenderFragment: func([]Block) (string, error) {
			return "", cause
		},
	})

	doc := Document{Blocks: []Block{
		Paragraph{Inlines: []Inline{Text{Value: "before "}}},
		Paragraph{Inlines: []Inline{textNote("boom")}},
	}}

	out, err := transformer.Transform(doc)
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, 0, renderErr.NoteID)
	assert.ErrorIs(t, err, cause)

	// No partial document comes back.
	assert.Empty(t, out.Blocks)
}
