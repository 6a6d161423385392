package sidenote

import (
	"fmt"
	"strings"
)

// FragmentRenderer turns a note's nested block content into an HTML string.
// Implementations render with the same writer configuration as the enclosing
// document; that configuration is captured when the renderer is constructed.
//
// Document writers tend to wrap fragments in one leading line; the transform
// discards everything up to and including the first line break of the output.
// Renderers that emit a single line are used as-is.
type FragmentRenderer func(blocks []Block) (string, error)

// Config holds transform configuration.
type Config struct {
	// TagType is the element name wrapping each note body.
	TagType string `json:"tagType,omitempty"`
	// TagRole is the value of the role attribute on that wrapper.
	TagRole string `json:"tagRole,omitempty"`
	// RenderFragment renders a note's nested blocks to HTML. Required.
	// A renderer failure aborts the whole transform.
	RenderFragment FragmentRenderer `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.TagType == "" {
		c.TagType = "aside"
	}
	if c.TagRole == "" {
		c.TagRole = "note"
	}
	return c
}

// Validate checks that config values are usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TagType) == "" || strings.ContainsAny(c.TagType, " \t\n<>/\"'") {
		return fmt.Errorf("invalid tagType %q: must be a bare element name", c.TagType)
	}
	if strings.TrimSpace(c.TagRole) == "" || strings.ContainsAny(c.TagRole, "<>\"") {
		return fmt.Errorf("invalid tagRole %q", c.TagRole)
	}
	if c.RenderFragment == nil {
		return ErrMissingRenderer
	}
	return nil
}
