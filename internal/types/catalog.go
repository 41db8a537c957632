package types

// VariantCatalog is a read-only, declaration-ordered view over the localized
// variants of a definition.
type VariantCatalog struct {
	keys   []LanguageKey
	blocks map[string]LanguageBlock
}

// NewVariantCatalog builds a catalog from declared blocks. Keys are unique:
// when a key is declared twice the first declaration wins. Loaders reject
// duplicates before a catalog is ever built, see DuplicateKeys.
func NewVariantCatalog(blocks []LanguageBlock) *VariantCatalog {
	c := &VariantCatalog{blocks: make(map[string]LanguageBlock, len(blocks))}
	for _, b := range blocks {
		id := b.Tags.ID()
		if _, seen := c.blocks[id]; seen {
			continue
		}
		b.Tags = b.Tags.Clone()
		c.keys = append(c.keys, b.Tags)
		c.blocks[id] = b
	}
	return c
}

// Len returns the number of variants.
func (c *VariantCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns every key in declaration order. The slice and its keys are copies.
func (c *VariantCatalog) Keys() []LanguageKey {
	if c == nil {
		return nil
	}
	out := make([]LanguageKey, len(c.keys))
	for i, k := range c.keys {
		out[i] = k.Clone()
	}
	return out
}

// Block returns the variant declared under key.
func (c *VariantCatalog) Block(key LanguageKey) (LanguageBlock, bool) {
	if c == nil {
		return LanguageBlock{}, false
	}
	b, ok := c.blocks[key.ID()]
	if ok {
		b.Tags = b.Tags.Clone()
	}
	return b, ok
}

// Match returns the first variant, in declaration order, whose key contains tag.
func (c *VariantCatalog) Match(tag string) (LanguageBlock, bool) {
	if c == nil {
		return LanguageBlock{}, false
	}
	for _, k := range c.keys {
		if k.Contains(tag) {
			return c.Block(k)
		}
	}
	return LanguageBlock{}, false
}

// Default returns the first variant marked default.
func (c *VariantCatalog) Default() (LanguageBlock, bool) {
	if c == nil {
		return LanguageBlock{}, false
	}
	for _, k := range c.keys {
		if b := c.blocks[k.ID()]; b.Default {
			return c.Block(k)
		}
	}
	return LanguageBlock{}, false
}

// DuplicateKeys returns every key declared more than once, in the order the
// repeat was first seen.
func DuplicateKeys(blocks []LanguageBlock) []LanguageKey {
	seen := make(map[string]int, len(blocks))
	var dups []LanguageKey
	for _, b := range blocks {
		id := b.Tags.ID()
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, b.Tags.Clone())
		}
	}
	return dups
}
