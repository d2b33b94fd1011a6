package lexer

import "github.com/rivo/uniseg"

// IsWideChar reports whether a character literal's text (quotes included)
// encodes more than one grapheme cluster's worth of bytes, and so must be
// emitted as a wide C character literal rather than a narrow one. Detection
// happens here, at consumption time, rather than in Next: the lexer only
// knows it saw a quoted literal, not how wide it is (spec §3).
func IsWideChar(literalText string) bool {
	body := unquoteChar(literalText)
	if body == "" {
		return false
	}
	graphemes := uniseg.NewGraphemes(body)
	clusters := 0
	for graphemes.Next() {
		clusters++
		if clusters > 1 {
			return true
		}
	}
	// A single cluster wider than one byte (a multi-byte UTF-8 sequence)
	// still denotes a single source character, but the C side needs wchar_t
	// storage whenever the raw bytes exceed one. An escape like "\n" is two
	// clusters and was already reported as wide by the loop above.
	return len(body) > 1 && body[0] != '\\'
}

func unquoteChar(text string) string {
	if len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'' {
		return text[1 : len(text)-1]
	}
	return text
}
