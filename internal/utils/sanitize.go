package utils

import "strings"

// textEscaper neutralizes markup in user-supplied text. Ampersands are
// deliberately left alone: the output then contains no characters the
// replacer acts on, so sanitizing twice yields the same result. Escaping
// '&' as well (as html.EscapeString does) would turn an already-escaped
// "&lt;" into "&amp;lt;" on a second pass.
var textEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// SanitizeText escapes HTML/script markup so stored text cannot execute
// when rendered in a browser. Idempotent.
func SanitizeText(text string) string {
	return textEscaper.Replace(text)
}
