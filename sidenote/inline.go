package sidenote

const (
	commentStart = "<!--"
	commentEnd   = "-->"
)

// scanInlines splits one inline sequence around its notes. Runs of non-note
// inlines become Plain blocks; each note becomes one raw HTML block. The run
// before a note ends with a comment-start marker and the run after it begins
// with a comment-end marker: together with the markers on the note block
// itself they wrap the serializer's block separators in HTML comments, so the
// note markup visually abuts the surrounding text.
func (s *state) scanInlines(inlines []Inline) ([]Block, error) {
	var (
		out     []Block
		pending []Inline
		found   bool
	)

	for _, inline := range inlines {
		note, ok := inline.(Note)
		if !ok {
			pending = append(pending, inline)
			continue
		}

		found = true
		pending = append(pending, RawInline{Format: "html", Text: commentStart})
		out = append(out, Plain{Inlines: pending})

		rendered, err := s.renderNote(note.Blocks)
		if err != nil {
			return nil, err
		}
		out = append(out, rendered)

		pending = []Inline{RawInline{Format: "html", Text: commentEnd}}
	}

	if !found {
		// Common case: no notes, one untouched block, no markers.
		return []Block{Plain{Inlines: inlines}}, nil
	}

	return append(out, Plain{Inlines: pending}), nil
}
