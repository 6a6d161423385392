package sidenote

// walkBlocks processes a block sequence in document order. Each input block
// may expand into several output blocks, since a scanned paragraph yields
// alternating text runs and rendered-note blocks.
//
// Only ordered and bullet lists recurse into nested content. Other container
// kinds (block quotes, tables, ...) arrive as Opaque and pass through with
// their notes untouched.
func (s *state) walkBlocks(blocks []Block) ([]Block, error) {
	var out []Block

	for _, block := range blocks {
		switch typed := block.(type) {
		case Paragraph:
			scanned, err := s.scanInlines(typed.Inlines)
			if err != nil {
				return nil, err
			}
			// Placeholder block boundary, so two consecutive source
			// paragraphs do not merge in the downstream serializer.
			out = append(out, Plain{})
			out = append(out, scanned...)

		case Plain:
			scanned, err := s.scanInlines(typed.Inlines)
			if err != nil {
				return nil, err
			}
			out = append(out, scanned...)

		case OrderedList:
			items, err := s.walkItems(typed.Items)
			if err != nil {
				return nil, err
			}
			out = append(out, OrderedList{Items: items})

		case BulletList:
			items, err := s.walkItems(typed.Items)
			if err != nil {
				return nil, err
			}
			out = append(out, BulletList{Items: items})

		default:
			out = append(out, block)
		}
	}

	return out, nil
}

// walkItems recurses into list items with the same running counter, so note
// ids keep increasing across items and across the whole list.
func (s *state) walkItems(items [][]Block) ([][]Block, error) {
	out := make([][]Block, 0, len(items))

	for _, item := range items {
		walked, err := s.walkBlocks(item)
		if err != nil {
			return nil, err
		}
		out = append(out, walked)
	}

	return out, nil
}
