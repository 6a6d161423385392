package sidenote

import (
	"strconv"
	"strings"
)

// marginnotePrefix marks a note body as an unnumbered margin note.
const marginnotePrefix = "{-} "

// renderNote renders one note's nested blocks into a raw HTML block carrying
// the label/input/wrapper triple, bracketed by gluing comment markers.
func (s *state) renderNote(blocks []Block) (Raw, error) {
	id := s.counter
	s.counter++

	fragment, err := s.config.RenderFragment(blocks)
	if err != nil {
		return Raw{}, &RenderError{NoteID: id, Err: err}
	}

	// Fragment renderers wrap their output in one leading line; only the
	// remainder is usable. Single-line output is taken whole.
	if i := strings.IndexByte(fragment, '\n'); i >= 0 {
		fragment = fragment[i+1:]
	}

	noteType := Sidenote
	body := fragment
	if strings.HasPrefix(fragment, marginnotePrefix) {
		noteType = Marginnote
		body = fragment[len(marginnotePrefix):]
	}

	return Raw{Format: "html", Text: s.noteMarkup(id, noteType, body)}, nil
}

// noteMarkup assembles the emitted fragment: a label toggling a hidden
// checkbox, then the wrapper element carrying the note body. Tufte-CSS
// stylesheets key off the exact class names.
func (s *state) noteMarkup(id int, noteType NoteType, body string) string {
	ref := "sn-" + strconv.Itoa(id)

	labelClass := "margin-toggle"
	labelText := ""
	if noteType == Sidenote {
		labelClass += " sidenote-number"
	} else {
		labelText = "&#8853;"
	}

	var b strings.Builder
	b.WriteString(commentEnd)
	b.WriteString(`<label for="`)
	b.WriteString(ref)
	b.WriteString(`" class="`)
	b.WriteString(labelClass)
	b.WriteString(`">`)
	b.WriteString(labelText)
	b.WriteString(`</label>`)
	b.WriteString(`<input type="checkbox" id="`)
	b.WriteString(ref)
	b.WriteString(`" class="margin-toggle"/>`)
	b.WriteString(`<`)
	b.WriteString(s.config.TagType)
	b.WriteString(` class="`)
	b.WriteString(string(noteType))
	b.WriteString(`" role="`)
	b.WriteString(s.config.TagRole)
	b.WriteString(`">`)
	b.WriteString(body)
	b.WriteString(`</`)
	b.WriteString(s.config.TagType)
	b.WriteString(`>`)
	b.WriteString(commentStart)
	return b.String()
}
