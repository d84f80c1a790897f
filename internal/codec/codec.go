package codec

import "strings"

const (
	// CDATAOpen marks the start of a raw-text block.
	CDATAOpen = "<![CDATA["
	// CDATAClose marks the end of a raw-text block.
	CDATAClose = "]]>"
)

// escapeReplacer handles everything except '&', which Escape replaces first
// so the entities introduced here are not escaped twice.
var escapeReplacer = strings.NewReplacer(
	`"`, "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

// unescapeReplacer resolves the five entities in a single left-to-right pass,
// so "&amp;lt;" becomes "&lt;" rather than "<".
var unescapeReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

// Escape replaces the five XML special characters with entities.
func Escape(content string) string {
	content = strings.ReplaceAll(content, "&", "&amp;")
	return escapeReplacer.Replace(content)
}

// Unescape resolves &quot;, &apos;, &lt;, &gt; and &amp;.
func Unescape(content string) string {
	if !strings.Contains(content, "&") {
		return content
	}
	return unescapeReplacer.Replace(content)
}

// Clean strips literal CDATA markers, unescapes entities and trims the
// surrounding whitespace. Internal line structure is kept.
func Clean(raw string) string {
	raw = strings.ReplaceAll(raw, CDATAOpen, "")
	raw = strings.ReplaceAll(raw, CDATAClose, "")
	return strings.TrimSpace(Unescape(raw))
}
