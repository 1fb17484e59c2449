package formschema

import "strings"

// Mirror canonicalizes t for a collection in the given mode. Outside
// bilingual mode the secondary text always equals the primary text. In
// bilingual mode both stay independent, but an empty secondary is back-filled
// from the primary so readers of Secondary never see an empty string for a
// non-empty Primary.
func Mirror(t LocalizedText, bilingual bool) LocalizedText {
	out := LocalizedText{
		Primary:   strings.TrimSpace(t.Primary),
		Secondary: strings.TrimSpace(t.Secondary),
	}
	if !bilingual || out.Secondary == "" {
		out.Secondary = out.Primary
	}
	return out
}

// MirrorAll applies Mirror to every element, preserving order and duplicates.
func MirrorAll(texts []LocalizedText, bilingual bool) []LocalizedText {
	if len(texts) == 0 {
		return nil
	}
	out := make([]LocalizedText, len(texts))
	for i, t := range texts {
		out[i] = Mirror(t, bilingual)
	}
	return out
}
