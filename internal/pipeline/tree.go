package pipeline

import "strings"

// Line syntax markers.
const (
	textPrefix     = "- "
	rawPrefix      = "| "
	selfCloseMark  = "/"
	contentMarker  = ':'
	attrOpenMark   = "["
	attrCloseMark  = "]"
	sentinelIndent = -1
)

// frame is an open ancestor on the construction stack.
type frame struct {
	level int
	node  *Node
}

// Build turns tokens into a tree rooted at a TagRoot node.
func Build(tokens []Token) *Node {
	root, _ := BuildWithDiagnostics(tokens)
	return root
}

// BuildWithDiagnostics is Build that also reports what the builder had to
// guess about. A node at level L becomes a child of the nearest preceding
// node whose level is strictly less than L.
func BuildWithDiagnostics(tokens []Token) (*Node, []Diagnostic) {
	root := NewRoot()
	stack := []frame{{level: sentinelIndent, node: root}}

	var diags []Diagnostic
	for _, tok := range tokens {
		if tok.Misaligned {
			diags = append(diags, Diagnostic{Line: tok.Line, Kind: IndentNotMultiple, Text: tok.Content})
		}

		for stack[len(stack)-1].level >= tok.Level {
			stack = stack[:len(stack)-1]
		}

		node, kinds := parseLine(tok.Content)
		for _, k := range kinds {
			diags = append(diags, Diagnostic{Line: tok.Line, Kind: k, Text: tok.Content})
		}

		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, frame{level: tok.Level, node: node})
	}

	return root, diags
}

// parseLine parses one line (leading spaces already removed) into a node.
func parseLine(line string) (*Node, []DiagnosticKind) {
	if strings.HasPrefix(line, textPrefix) {
		return &Node{Tag: TagText, Content: line[len(textPrefix):]}, nil
	}

	left, content := line, ""
	if i := contentSeparator(line); i >= 0 {
		left = line[:i]
		content = strings.TrimPrefix(line[i+1:], " ")
	}

	var kinds []DiagnosticKind
	n := &Node{Content: content}

	open := strings.Index(left, attrOpenMark)
	if open >= 0 && strings.Contains(left, attrCloseMark) {
		n.Tag = strings.TrimSpace(left[:open])

		inner, trailing := left[open+1:], ""
		if end := strings.LastIndex(inner, attrCloseMark); end >= 0 {
			inner, trailing = inner[:end], inner[end+1:]
		} else {
			// the only ']' precedes the '['
			kinds = append(kinds, MalformedAttributeSpec)
		}

		attrs, unterminated := parseAttributes(inner)
		n.Attrs = attrs
		if unterminated {
			kinds = append(kinds, UnterminatedQuote)
		}
		if strings.TrimSpace(trailing) == selfCloseMark {
			n.SelfClosing = true
		}
	} else {
		n.Tag = strings.TrimSpace(left)
		if strings.ContainsAny(left, attrOpenMark+attrCloseMark) {
			kinds = append(kinds, MalformedAttributeSpec)
		}
	}

	if strings.HasSuffix(n.Tag, selfCloseMark) {
		n.Tag = strings.TrimSpace(strings.TrimSuffix(n.Tag, selfCloseMark))
		n.SelfClosing = true
	}
	if n.Tag == "" {
		kinds = append(kinds, EmptyTag)
	}

	return n, kinds
}

// contentSeparator returns the index of the ':' that starts inline content,
// or -1. Colons inside a bracketed attribute list (for example in URLs) are
// skipped. If the brackets or quotes never balance, the first ':' is used.
func contentSeparator(line string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case depth > 0 && (c == '"' || c == '\''):
			quote = c
		case c == '[':
			depth++
		case c == ']' && depth > 0:
			depth--
		case c == contentMarker && depth == 0:
			return i
		}
	}
	if depth > 0 || quote != 0 {
		return strings.IndexByte(line, contentMarker)
	}
	return -1
}
