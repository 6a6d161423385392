// Package mdhtml converts markdown with footnotes into an HTML fragment in
// which every footnote has been rewritten as a Tufte-CSS sidenote or
// marginnote. It parses with goldmark, runs the sidenote transform over an
// intermediate document tree, and serializes the result with exactly one
// newline between top-level blocks — the separator count the transform's
// comment gluing depends on.
package mdhtml

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	gohtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/rgonek/tufte-sidenotes/sidenote"
)

// Converter converts markdown with footnotes to sidenote HTML.
type Converter struct {
	config      Config
	markdown    goldmark.Markdown
	transformer *sidenote.Transformer
}

// state threads parse context through the recursive goldmark conversion.
type state struct {
	config    Config
	source    []byte
	renderer  renderer.Renderer
	footnotes map[int][]sidenote.Block
	warnings  []Warning
}

// New creates a Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Footnote),
		goldmark.WithRendererOptions(gohtml.WithUnsafe()),
	)

	transformer, err := sidenote.New(sidenote.Config{
		TagType:        cfg.TagType,
		TagRole:        cfg.TagRole,
		RenderFragment: renderFragment,
	})
	if err != nil {
		return nil, err
	}

	return &Converter{
		config:      cfg,
		markdown:    md,
		transformer: transformer,
	}, nil
}

// Convert parses source, rewrites its footnotes into margin notes, and
// returns the serialized HTML fragment.
func (c *Converter) Convert(source []byte) (Result, error) {
	doc, s, err := c.parse(source)
	if err != nil {
		return Result{}, err
	}

	transformed, err := c.transformer.Transform(doc)
	if err != nil {
		return Result{}, err
	}

	return Result{
		HTML:     renderDocument(transformed),
		Warnings: s.warnings,
	}, nil
}

func (c *Converter) parse(source []byte) (sidenote.Document, *state, error) {
	s := &state{
		config:    c.config,
		source:    source,
		renderer:  c.markdown.Renderer(),
		footnotes: make(map[int][]sidenote.Block),
	}

	root := c.markdown.Parser().Parse(text.NewReader(source))

	if err := s.collectFootnotes(root); err != nil {
		return sidenote.Document{}, nil, err
	}

	blocks, err := s.convertBlocks(root)
	if err != nil {
		return sidenote.Document{}, nil, err
	}

	return sidenote.Document{Blocks: blocks}, s, nil
}

func (s *state) addWarning(warnType WarningType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:    warnType,
		Message: message,
	})
}
