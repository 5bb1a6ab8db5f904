package pipeline

import "strings"

// indentUnit is the padding added per rendered nesting level.
const indentUnit = "  "

var (
	escapeText = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;",
	).Replace
	escapeAttr = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
	).Replace
)

// item is a unit of pending output: a node to expand at a depth, or a
// literal string when node is nil.
type item struct {
	node  *Node
	depth int
	text  string
}

func literal(s string) item { return item{text: s} }

// Render serializes n and its descendants as indented HTML.
// The walk uses an explicit stack so nesting depth is bounded only by memory.
func Render(n *Node) string {
	var b strings.Builder
	stack := []item{{node: n}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.node == nil {
			b.WriteString(it.text)
			continue
		}

		expanded := expand(it.node, it.depth)
		for i := len(expanded) - 1; i >= 0; i-- {
			stack = append(stack, expanded[i])
		}
	}
	return b.String()
}

// expand returns the output of n in document order, leaving children
// unexpanded.
func expand(n *Node, depth int) []item {
	switch n.Tag {
	case TagRoot:
		return children(nil, n.Children, depth)
	case TagText:
		return []item{literal(pad(depth) + escapeText(n.Content) + "\n")}
	case TagPage:
		return expandPage(n, depth)
	default:
		return expandElement(n, depth)
	}
}

// expandPage emits the HTML5 skeleton. Children of head nodes go into
// <head>; children of body nodes and every other direct child go into <body>.
func expandPage(n *Node, depth int) []item {
	p, inner := pad(depth), pad(depth+1)

	items := []item{literal(p + "<!DOCTYPE html>\n" + p + "<html>\n" + inner + "<head>\n")}
	for _, c := range n.Children {
		if c.Tag == TagHead {
			items = children(items, c.Children, depth+2)
		}
	}

	items = append(items, literal(inner+"</head>\n"+inner+"<body>\n"))
	for _, c := range n.Children {
		switch c.Tag {
		case TagHead:
		case TagBody:
			items = children(items, c.Children, depth+2)
		default:
			items = append(items, item{node: c, depth: depth + 2})
		}
	}

	return append(items, literal(inner+"</body>\n"+p+"</html>\n"))
}

func expandElement(n *Node, depth int) []item {
	p := pad(depth)
	open := "<" + n.Tag + formatAttributes(n.Attrs)
	closing := "</" + n.Tag + ">\n"

	raw := strings.HasPrefix(n.Content, rawPrefix)
	var inner string
	if raw {
		inner = n.Content[len(rawPrefix):]
	} else {
		inner = escapeText(n.Content)
	}

	hasChildren := len(n.Children) > 0
	switch {
	case !hasChildren && !raw && inner == "":
		if IsVoidElement(n.Tag) || n.SelfClosing {
			return []item{literal(p + open + " />\n")}
		}
		return []item{literal(p + open + ">" + closing)}
	case !hasChildren && !raw:
		return []item{literal(p + open + ">" + inner + closing)}
	}

	items := []item{literal(p + open + ">\n")}
	if raw || inner != "" {
		items = append(items, literal(pad(depth+1)+inner+"\n"))
	}
	items = children(items, n.Children, depth+1)
	return append(items, literal(p+closing))
}

func children(items []item, nodes []*Node, depth int) []item {
	for _, c := range nodes {
		items = append(items, item{node: c, depth: depth})
	}
	return items
}

// formatAttributes renders attributes in order, each with a leading space.
func formatAttributes(a *Attributes) string {
	var b strings.Builder
	for _, attr := range a.All() {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		if attr.Value != "" {
			b.WriteString(`="`)
			b.WriteString(escapeAttr(attr.Value))
			b.WriteByte('"')
		}
	}
	return b.String()
}

func pad(depth int) string {
	return strings.Repeat(indentUnit, depth)
}
