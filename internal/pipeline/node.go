package pipeline

// Reserved and special-cased tag names.
const (
	TagRoot = "root" // tree root, never rendered as a tag
	TagText = "text" // literal text line
	TagPage = "page" // HTML5 document skeleton
	TagHead = "head"
	TagBody = "body"
)

// Node is an element of the document tree. A parent exclusively owns its
// children; there are no back references.
type Node struct {
	Tag         string
	Attrs       *Attributes
	Content     string
	Children    []*Node
	SelfClosing bool
}

// NewRoot returns an empty root node.
func NewRoot() *Node {
	return &Node{Tag: TagRoot}
}

// voidElements can never have content and always render self-closed.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Walk calls fn for n and every descendant in document order, passing the
// depth relative to n. It uses an explicit stack so deep trees are safe.
func Walk(n *Node, fn func(node *Node, depth int)) {
	type entry struct {
		node  *Node
		depth int
	}
	stack := []entry{{n, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(e.node, e.depth)
		for i := len(e.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, entry{e.node.Children[i], e.depth + 1})
		}
	}
}
