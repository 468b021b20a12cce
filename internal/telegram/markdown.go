package telegram

import (
	"html"
	"strings"
	"unicode/utf8"
)

// SplitMessage splits a message into chunks of maxLen characters,
// trying to split at newlines when possible.
func SplitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	for len(text) > 0 {
		if utf8.RuneCountInString(text) <= maxLen {
			parts = append(parts, text)
			break
		}

		runes := []rune(text)
		splitAt := maxLen

		chunk := string(runes[:maxLen])
		lastNewline := strings.LastIndex(chunk, "\n")
		if lastNewline > maxLen/2 {
			splitAt = utf8.RuneCountInString(chunk[:lastNewline]) + 1
		}

		parts = append(parts, string(runes[:splitAt]))
		text = string(runes[splitAt:])
	}

	return parts
}

// EscapeHTML escapes text for ParseModeHTML messages.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// Code wraps s in an HTML <code> element.
func Code(s string) string {
	return "<code>" + EscapeHTML(s) + "</code>"
}
