// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Used to turn RSS descriptions into plain fallback text

package htmltext

import (
	"strings"
)

// Strip removes HTML tags and decodes common entities from a string
func Strip(html string) string {
	text := html

	// Remove script and style content
	text = strings.ReplaceAll(text, "<script>", "<script><!--")
	text = strings.ReplaceAll(text, "</script>", "--></script>")
	text = strings.ReplaceAll(text, "<style>", "<style><!--")
	text = strings.ReplaceAll(text, "</style>", "--></style>")

	// Remove HTML tags
	for strings.Contains(text, "<") && strings.Contains(text, ">") {
		start := strings.Index(text, "<")
		end := strings.Index(text, ">")
		if start < end && start >= 0 && end >= 0 {
			text = text[:start] + " " + text[end+1:]
		} else {
			break
		}
	}

	// Decode common HTML entities
	text = DecodeEntities(text)

	// Normalize whitespace
	return NormalizeWhitespace(text)
}

// DecodeEntities decodes common HTML entities
func DecodeEntities(text string) string {
	replacements := map[string]string{
		"&nbsp;":   " ",
		"&amp;":    "&",
		"&lt;":     "<",
		"&gt;":     ">",
		"&quot;":   "\"",
		"&#39;":    "'",
		"&apos;":   "'",
		"&#8230;":  "...",
		"&#8217;":  "'",
		"&#8220;":  "\"",
		"&#8221;":  "\"",
		"&ldquo;":  "\"",
		"&rdquo;":  "\"",
		"&lsquo;":  "'",
		"&rsquo;":  "'",
		"&mdash;":  "-",
		"&ndash;":  "-",
		"&hellip;": "...",
		"&copy;":   "(c)",
		"&reg;":    "(R)",
		"&trade;":  "(TM)",
	}

	result := text
	for entity, replacement := range replacements {
		result = strings.ReplaceAll(result, entity, replacement)
	}

	return result
}

// NormalizeWhitespace collapses all whitespace runs to single spaces and
// trims the ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
