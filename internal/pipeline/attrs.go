package pipeline

import "strings"

// Attr is a single attribute. An empty Value renders as a bare key.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an insertion-ordered attribute map.
// The zero value is ready to use; a nil *Attributes behaves as empty.
type Attributes struct {
	list  []Attr
	index map[string]int
}

// Set stores value under key. An existing key keeps its position.
func (a *Attributes) Set(key, value string) {
	if i, ok := a.index[key]; ok {
		a.list[i].Value = value
		return
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	a.index[key] = len(a.list)
	a.list = append(a.list, Attr{Key: key, Value: value})
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	i, ok := a.index[key]
	if !ok {
		return "", false
	}
	return a.list[i].Value, true
}

// Len returns the number of distinct keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// All returns a copy of the attributes in first-appearance order.
func (a *Attributes) All() []Attr {
	if a == nil || len(a.list) == 0 {
		return nil
	}
	out := make([]Attr, len(a.list))
	copy(out, a.list)
	return out
}

// ParseAttributes parses the interior of an attribute bracket, for example
// `id="x" class='a b' disabled`. Spaces separate attributes outside quotes,
// a quote only closes the span opened by the same quote character, and later
// duplicates overwrite earlier values. Unterminated quotes are tolerated.
func ParseAttributes(s string) *Attributes {
	attrs, _ := parseAttributes(s)
	return attrs
}

// parseAttributes is ParseAttributes that also reports an unterminated quote.
func parseAttributes(s string) (*Attributes, bool) {
	parts, unterminated := splitAttributes(s)

	attrs := &Attributes{}
	for _, p := range parts {
		key, value, found := strings.Cut(p, "=")
		if !found {
			attrs.Set(p, "")
			continue
		}
		attrs.Set(strings.TrimSpace(key), unquote(strings.TrimSpace(value)))
	}
	return attrs, unterminated
}

// splitAttributes breaks s on spaces that are not inside a quoted span.
// Quote characters are kept in the returned parts.
func splitAttributes(s string) (parts []string, unterminated bool) {
	var cur strings.Builder
	var quote rune

	flush := func() {
		if p := strings.TrimSpace(cur.String()); p != "" {
			parts = append(parts, p)
		}
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case r == '"' || r == '\'':
			if quote == 0 {
				quote = r
			} else if quote == r {
				quote = 0
			}
			cur.WriteRune(r)
		case r == ' ' && quote == 0:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return parts, quote != 0
}

// unquote removes one matching pair of surrounding quotes.
func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if first == last && (first == '"' || first == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}
