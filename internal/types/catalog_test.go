package types

import "testing"

func TestVariantCatalog_OrderAndLookup(t *testing.T) {
	c := NewVariantCatalog([]LanguageBlock{
		{Tags: LanguageKey{"en-US", "en"}},
		{Tags: LanguageKey{"de-AT", "de"}, Default: true},
		{Tags: LanguageKey{"de"}},
	})

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	keys := c.Keys()
	if !keys[1].Equal(LanguageKey{"de-AT", "de"}) {
		t.Errorf("Keys()[1] = %v", keys[1])
	}

	// Match returns the first declared variant containing the tag.
	if b, ok := c.Match("de"); !ok || !b.Tags.Equal(LanguageKey{"de-AT", "de"}) {
		t.Errorf("Match(de) = %v, %v", b.Tags, ok)
	}
	if _, ok := c.Match("ja"); ok {
		t.Error("Match(ja) found a variant")
	}
	if b, ok := c.Default(); !ok || !b.Default {
		t.Errorf("Default() = %v, %v", b, ok)
	}
	if _, ok := c.Block(LanguageKey{"de", "de-AT"}); ok {
		t.Error("Block() matched a key with the same tags in another order")
	}
}

func TestVariantCatalog_KeysAreCopies(t *testing.T) {
	c := NewVariantCatalog([]LanguageBlock{{Tags: LanguageKey{"fr"}}})
	c.Keys()[0][0] = "xx"
	if _, ok := c.Block(LanguageKey{"fr"}); !ok {
		t.Error("mutating Keys() changed the catalog")
	}
}

func TestVariantCatalog_FirstDuplicateWins(t *testing.T) {
	blocks := []LanguageBlock{
		{Tags: LanguageKey{"de"}, URL: "first"},
		{Tags: LanguageKey{"fr"}},
		{Tags: LanguageKey{"de"}, URL: "second"},
	}
	c := NewVariantCatalog(blocks)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if b, _ := c.Block(LanguageKey{"de"}); b.URL != "first" {
		t.Errorf("Block(de).URL = %q, want first", b.URL)
	}

	dups := DuplicateKeys(blocks)
	if len(dups) != 1 || !dups[0].Equal(LanguageKey{"de"}) {
		t.Errorf("DuplicateKeys() = %v", dups)
	}
}

func TestVariantCatalog_NilIsEmpty(t *testing.T) {
	var c *VariantCatalog
	if c.Len() != 0 || c.Keys() != nil {
		t.Error("nil catalog is not empty")
	}
	if _, ok := c.Default(); ok {
		t.Error("nil catalog has a default")
	}
}
