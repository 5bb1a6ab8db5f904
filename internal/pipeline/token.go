package pipeline

import "strings"

// DefaultIndentWidth is the number of leading spaces per nesting level.
const DefaultIndentWidth = 2

// Token is one non-blank source line with its nesting level.
type Token struct {
	Level   int    // leading spaces divided by the indent width
	Content string // line without its leading spaces
	Line    int    // 1-based source line number

	// Misaligned reports leading spaces that are not a multiple of the indent width.
	Misaligned bool
}

// Tokenize splits text into tokens, one per non-blank line, in source order.
// Only spaces count toward indentation; a tab ends the leading run.
// A non-positive indentWidth falls back to DefaultIndentWidth.
func Tokenize(text string, indentWidth int) []Token {
	if indentWidth <= 0 {
		indentWidth = DefaultIndentWidth
	}

	lines := strings.Split(text, "\n")
	tokens := make([]Token, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		content := strings.TrimLeft(line, " ")
		leading := len(line) - len(content)
		tokens = append(tokens, Token{
			Level:      leading / indentWidth,
			Content:    content,
			Line:       i + 1,
			Misaligned: leading%indentWidth != 0,
		})
	}
	return tokens
}
