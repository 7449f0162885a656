package supernodes

import (
	"fmt"
	"sort"
	"strings"
)

/*
Attributes returns a mapping with the scalar attributes of the
node, excluding its children: name, value, id, function (as its
source expression), the routing fields and any additional
attributes. If includeEmpty is false, unset attributes are left
out of the mapping.
*/
func (n *Node) Attributes(includeEmpty bool) map[string]interface{} {
	attrs := map[string]interface{}{
		"name":                n.Name,
		"value":               n.Value,
		"id":                  n.ID,
		"function":            functionSource(n),
		"child_name_if_true":  n.ChildNameIfTrue,
		"child_name_if_false": n.ChildNameIfFalse,
	}
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	if includeEmpty {
		return attrs
	}
	for k, v := range attrs {
		if v == nil || v == "" {
			delete(attrs, k)
		}
	}
	return attrs
}

func (n *Node) String() string {
	result := n.headerString()
	for i, c := range n.children {
		childLines := strings.Split(c.String(), "\n")
		result = fmt.Sprintf("%s\n|__ %s", result, childLines[0])
		for _, line := range childLines[1:] {
			if i < len(n.children)-1 {
				result = fmt.Sprintf("%s\n|    %s", result, line)
			} else {
				result = fmt.Sprintf("%s\n     %s", result, line)
			}
		}
	}
	return result
}

// headerString renders the node's own attributes as a single
// "(name=..., value: T)" line, set attributes only, values shown
// by type and the rest shortened to keep the line readable.
func (n *Node) headerString() string {
	var parts []string
	if n.Name != "" {
		parts = append(parts, fmt.Sprintf("name=%s", shorten(n.Name)))
	}
	if n.Value != nil {
		parts = append(parts, fmt.Sprintf("value: %T", n.Value))
	}
	if n.ID != "" {
		parts = append(parts, fmt.Sprintf("id=%s", shorten(n.ID)))
	}
	if src := functionSource(n); src != "" {
		parts = append(parts, fmt.Sprintf("function=%s", shorten(src)))
	}
	if n.ChildNameIfTrue != "" {
		parts = append(parts, fmt.Sprintf("child_name_if_true=%s", shorten(n.ChildNameIfTrue)))
	}
	if n.ChildNameIfFalse != "" {
		parts = append(parts, fmt.Sprintf("child_name_if_false=%s", shorten(n.ChildNameIfFalse)))
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, shorten(fmt.Sprintf("%v", n.Attrs[k]))))
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

func shorten(text string) string {
	if len(text) <= 20 && !strings.Contains(text, "\n") {
		return text
	}
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "\n"); i >= 0 && i < 20 {
		return text[:i] + " ..."
	}
	if len(text) > 20 {
		text = text[:20]
	}
	return text + " ..."
}
