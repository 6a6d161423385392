package mdhtml

import "fmt"

// RefPolicy controls behavior for footnote references without a definition.
type RefPolicy string

const (
	// RefWarn keeps the reference as literal text and records a warning.
	RefWarn RefPolicy = "warn"
	// RefError fails the conversion.
	RefError RefPolicy = "error"
	// RefStrip drops the reference silently.
	RefStrip RefPolicy = "strip"
)

// Config holds converter configuration.
type Config struct {
	// TagType is the element wrapping each note body. Default "aside".
	TagType string `json:"tagType,omitempty"`
	// TagRole is the role attribute on that wrapper. Default "note".
	TagRole string `json:"tagRole,omitempty"`
	// UnresolvedRefs is the policy for footnote references that have no
	// matching definition. Default RefWarn.
	UnresolvedRefs RefPolicy `json:"unresolvedRefs,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.TagType == "" {
		c.TagType = "aside"
	}
	if c.TagRole == "" {
		c.TagRole = "note"
	}
	if c.UnresolvedRefs == "" {
		c.UnresolvedRefs = RefWarn
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.UnresolvedRefs != RefWarn && c.UnresolvedRefs != RefError && c.UnresolvedRefs != RefStrip {
		return fmt.Errorf("invalid unresolvedRefs policy %q", c.UnresolvedRefs)
	}
	return nil
}
