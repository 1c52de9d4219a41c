package emojipack

import "regexp"

var packLinkPattern = regexp.MustCompile(`(?:https?://)?t\.me/addemoji/([a-zA-Z0-9_]+)`)

// ExtractPackName pulls the pack name out of a t.me/addemoji sharing link.
// Anything that does not match is treated as an already-canonical name and
// passed through unchanged.
func ExtractPackName(urlOrName string) string {
	if m := packLinkPattern.FindStringSubmatch(urlOrName); m != nil {
		return m[1]
	}

	return urlOrName
}
