package handler

import "strings"

// markdownV2Specials is the full reserved set from the Bot API docs
const markdownV2Specials = "_*[]()~`>#+-=|{}.!"

// escapeMarkdownV2 backslash-escapes every MarkdownV2 reserved
// character so literal punctuation survives sending
func escapeMarkdownV2(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownV2Specials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
