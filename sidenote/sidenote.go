// Package sidenote rewrites footnote-style Note inlines into Tufte-CSS
// sidenote and marginnote HTML fragments, as a post-parse transform over an
// in-memory document tree.
//
// Emitted fragments are glued to the surrounding text with HTML comment
// markers. The gluing assumes the downstream serializer emits exactly one
// whitespace separator between adjacent top-level blocks; the comments
// swallow that separator so the note markup abuts its neighbours. If the
// serializer's separator behavior changes, the gluing breaks silently.
package sidenote

// Transformer applies the sidenote transform to documents.
type Transformer struct {
	config Config
}

// state threads the running note counter through one transform pass. The
// counter is read-then-incremented exactly once per note, in document order,
// and is never reset mid-document.
type state struct {
	config  Config
	counter int
}

// New creates a Transformer with the given config.
func New(config Config) (*Transformer, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Transformer{config: cfg}, nil
}

// Transform rewrites every Note inline in doc into sidenote markup. Note ids
// are assigned 0, 1, 2, ... in strict document order, including notes nested
// inside list items, so the walk is strictly sequential. Metadata is passed
// through unchanged.
//
// Transform is not idempotent: notes are consumed on the first pass, so
// re-running it on its own output is not meaningful.
func (t *Transformer) Transform(doc Document) (Document, error) {
	s := &state{config: t.config}

	blocks, err := s.walkBlocks(doc.Blocks)
	if err != nil {
		return Document{}, err
	}

	// The walker emits an empty Plain placeholder before each paragraph so
	// the serializer keeps adjacent output runs apart. One of them can
	// survive at the very front of the document.
	if len(blocks) > 0 {
		if plain, ok := blocks[0].(Plain); ok && len(plain.Inlines) == 0 {
			blocks = blocks[1:]
		}
	}

	return Document{Meta: doc.Meta, Blocks: blocks}, nil
}
