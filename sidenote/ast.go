package sidenote

// Document is an ordered sequence of blocks plus opaque metadata supplied by
// the host parser. The transform rewrites Blocks and passes Meta through
// untouched.
type Document struct {
	Meta   any
	Blocks []Block
}

// Block is a top-level structural document element. The transform understands
// the closed set of variants below; any other kind travels as Opaque and is
// returned unchanged.
type Block interface {
	isBlock()
}

// Paragraph is a regular paragraph of inline content.
type Paragraph struct {
	Inlines []Inline
}

// Plain is inline content without paragraph wrapping.
type Plain struct {
	Inlines []Inline
}

// OrderedList is a numbered list. Each item is its own block sequence.
type OrderedList struct {
	Items [][]Block
}

// BulletList is an unordered list. Each item is its own block sequence.
type BulletList struct {
	Items [][]Block
}

// Raw is a raw fragment in the named format, emitted verbatim by the
// downstream serializer. The transform produces Raw blocks in "html" format.
type Raw struct {
	Format string
	Text   string
}

// Opaque carries a block kind this transform does not understand. It is
// never recursed into, so notes inside it are not extracted.
type Opaque struct {
	Node any
}

func (Paragraph) isBlock()   {}
func (Plain) isBlock()       {}
func (OrderedList) isBlock() {}
func (BulletList) isBlock()  {}
func (Raw) isBlock()         {}
func (Opaque) isBlock()      {}

// Inline is a content element within a block.
type Inline interface {
	isInline()
}

// Text is a literal text run.
type Text struct {
	Value string
}

// Note carries the nested block content of a footnote-style annotation.
type Note struct {
	Blocks []Block
}

// RawInline is a raw fragment in the named format, emitted verbatim.
type RawInline struct {
	Format string
	Text   string
}

// OpaqueInline carries an inline kind this transform does not understand.
type OpaqueInline struct {
	Node any
}

func (Text) isInline()         {}
func (Note) isInline()         {}
func (RawInline) isInline()    {}
func (OpaqueInline) isInline() {}

// NoteType classifies a rendered note. The value doubles as the class
// attribute on the emitted wrapper element.
type NoteType string

const (
	// Sidenote is a numbered footnote rendered in the margin.
	Sidenote NoteType = "sidenote"
	// Marginnote is an unnumbered margin annotation marked with a symbol.
	Marginnote NoteType = "marginnote"
)
