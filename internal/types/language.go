package types

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// LanguageKey identifies one localized variant by an ordered list of locale
// identifiers, e.g. ["de-AT", "de"]. Two keys are equal only when the full
// sequences match.
type LanguageKey []string

// Equal reports whether k and other hold the same tags in the same order.
func (k LanguageKey) Equal(other LanguageKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// Primary returns the first tag, or "" for an empty key.
func (k LanguageKey) Primary() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

// Contains reports whether tag is one of k's tags, ignoring case.
func (k LanguageKey) Contains(tag string) bool {
	for _, t := range k {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no backing array with k.
func (k LanguageKey) Clone() LanguageKey {
	if k == nil {
		return nil
	}
	out := make(LanguageKey, len(k))
	copy(out, k)
	return out
}

// ID returns a string usable as a map key. Distinct keys never share an ID.
func (k LanguageKey) ID() string {
	return strings.Join(k, "\x00")
}

// String renders the key as "de-AT, de".
func (k LanguageKey) String() string {
	return strings.Join(k, ", ")
}

// Quoted renders the key as a sentence of quoted tags: 'de-AT' and 'de'.
func (k LanguageKey) Quoted() string {
	quoted := make([]string, len(k))
	for i, t := range k {
		quoted[i] = "'" + t + "'"
	}
	return ToSentence(quoted)
}

// ToSentence joins words the way a sentence would list them:
// "a", "a and b", "a, b, and c".
func ToSentence(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	}
	return strings.Join(words[:len(words)-1], ", ") + ", and " + words[len(words)-1]
}

// UnmarshalYAML accepts either a sequence of tags or a single scalar tag.
func (k *LanguageKey) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*k = LanguageKey{node.Value}
		return nil
	}
	var tags []string
	if err := node.Decode(&tags); err != nil {
		return err
	}
	*k = LanguageKey(tags)
	return nil
}
