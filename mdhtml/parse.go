package mdhtml

import (
	"bytes"
	"fmt"
	"strings"

	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/rgonek/tufte-sidenotes/sidenote"
)

// collectFootnotes converts every footnote definition into its block content,
// keyed by index, so footnote links can be replaced with Note inlines. The
// definitions themselves are dropped from the block stream later.
func (s *state) collectFootnotes(root gast.Node) error {
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		list, ok := child.(*extast.FootnoteList)
		if !ok {
			continue
		}

		for fn := list.FirstChild(); fn != nil; fn = fn.NextSibling() {
			footnote, ok := fn.(*extast.Footnote)
			if !ok {
				continue
			}
			blocks, err := s.convertBlocks(footnote)
			if err != nil {
				return err
			}
			s.footnotes[footnote.Index] = blocks
		}
	}

	return nil
}

func (s *state) convertBlocks(parent gast.Node) ([]sidenote.Block, error) {
	var blocks []sidenote.Block

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		block, ok, err := s.convertBlockNode(child)
		if err != nil {
			return nil, err
		}
		if ok {
			blocks = append(blocks, block)
		}
	}

	return blocks, nil
}

func (s *state) convertBlockNode(node gast.Node) (sidenote.Block, bool, error) {
	switch typed := node.(type) {
	case *gast.Paragraph:
		inlines, err := s.convertInlines(typed)
		if err != nil {
			return nil, false, err
		}
		return sidenote.Paragraph{Inlines: inlines}, true, nil

	case *gast.TextBlock:
		inlines, err := s.convertInlines(typed)
		if err != nil {
			return nil, false, err
		}
		return sidenote.Plain{Inlines: inlines}, true, nil

	case *gast.List:
		return s.convertListNode(typed)

	case *extast.FootnoteList:
		// Consumed into Note inlines via collectFootnotes.
		return nil, false, nil

	default:
		// Any other block kind is pre-rendered and carried opaquely; the
		// transform passes it through untouched.
		html, err := s.renderNodeHTML(node)
		if err != nil {
			return nil, false, err
		}
		html = strings.TrimRight(html, "\n")
		if html == "" {
			return nil, false, nil
		}
		return sidenote.Opaque{Node: html}, true, nil
	}
}

func (s *state) convertListNode(node *gast.List) (sidenote.Block, bool, error) {
	items := make([][]sidenote.Block, 0, node.ChildCount())

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*gast.ListItem); !ok {
			continue
		}
		itemBlocks, err := s.convertBlocks(child)
		if err != nil {
			return nil, false, err
		}
		items = append(items, itemBlocks)
	}

	if node.IsOrdered() {
		return sidenote.OrderedList{Items: items}, true, nil
	}
	return sidenote.BulletList{Items: items}, true, nil
}

func (s *state) convertInlines(parent gast.Node) ([]sidenote.Inline, error) {
	var inlines []sidenote.Inline

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		converted, err := s.convertInlineNode(child)
		if err != nil {
			return nil, err
		}
		inlines = append(inlines, converted...)
	}

	return inlines, nil
}

func (s *state) convertInlineNode(node gast.Node) ([]sidenote.Inline, error) {
	switch typed := node.(type) {
	case *gast.Text:
		var inlines []sidenote.Inline
		if value := string(typed.Value(s.source)); value != "" {
			inlines = append(inlines, sidenote.Text{Value: value})
		}
		if typed.HardLineBreak() {
			inlines = append(inlines, sidenote.RawInline{Format: "html", Text: "<br/>"})
		} else if typed.SoftLineBreak() {
			inlines = append(inlines, sidenote.Text{Value: " "})
		}
		return inlines, nil

	case *gast.String:
		return []sidenote.Inline{sidenote.Text{Value: string(typed.Value)}}, nil

	case *gast.RawHTML:
		return []sidenote.Inline{sidenote.RawInline{Format: "html", Text: segmentsText(typed.Segments, s.source)}}, nil

	case *extast.FootnoteLink:
		return s.convertFootnoteLink(typed)

	case *extast.FootnoteBacklink:
		// Backrefs point into the footnote list, which is gone.
		return nil, nil

	default:
		// Styled inline content (emphasis, links, code spans, ...) is
		// pre-rendered; the transform's data model carries it as raw HTML.
		html, err := s.renderNodeHTML(node)
		if err != nil {
			return nil, err
		}
		if html == "" {
			return nil, nil
		}
		return []sidenote.Inline{sidenote.RawInline{Format: "html", Text: html}}, nil
	}
}

func (s *state) convertFootnoteLink(node *extast.FootnoteLink) ([]sidenote.Inline, error) {
	if blocks, ok := s.footnotes[node.Index]; ok {
		return []sidenote.Inline{sidenote.Note{Blocks: blocks}}, nil
	}

	switch s.config.UnresolvedRefs {
	case RefError:
		return nil, fmt.Errorf("unresolved footnote reference %d", node.Index)
	case RefStrip:
		return nil, nil
	default:
		s.addWarning(
			WarningUnresolvedReference,
			fmt.Sprintf("footnote reference %d has no definition", node.Index),
		)
		return []sidenote.Inline{sidenote.Text{Value: fmt.Sprintf("[^%d]", node.Index)}}, nil
	}
}

// renderNodeHTML renders one goldmark subtree with the shared renderer.
func (s *state) renderNodeHTML(node gast.Node) (string, error) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, s.source, node); err != nil {
		return "", fmt.Errorf("render %s node: %w", node.Kind(), err)
	}
	return buf.String(), nil
}

func segmentsText(segments *gtext.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		b.Write(segment.Value(source))
	}
	return b.String()
}
