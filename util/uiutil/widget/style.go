package widget

import (
	"strconv"
	"strings"
)

// Inline style of a node, a css-like "name: value; name: value" list. Only the px values of "width" and "height" are honoured by PrefSize, the other properties are kept for the host.

func (en *EmbedNode) Style() string {
	return en.style
}

// Changing the style changes what the node measures, the preferred size cache is dropped. Callers that need a new layout must invalidate the tree.
func (en *EmbedNode) SetStyle(s string) {
	if s == en.style {
		return
	}
	en.style = s
	en.prefSizeCache = nil
}

func (en *EmbedNode) StyleProp(name string) (string, bool) {
	for _, p := range parseStyle(en.style) {
		if p[0] == name {
			return p[1], true
		}
	}
	return "", false
}

// An empty value removes the property.
func (en *EmbedNode) SetStyleProp(name, value string) {
	props := parseStyle(en.style)
	found := false
	for i := 0; i < len(props); i++ {
		if props[i][0] != name {
			continue
		}
		found = true
		if value == "" {
			props = append(props[:i], props[i+1:]...)
			i--
		} else {
			props[i][1] = value
		}
	}
	if !found && value != "" {
		props = append(props, [2]string{name, value})
	}
	en.SetStyle(formatStyle(props))
}

func (en *EmbedNode) StylePx(name string) (int, bool) {
	v, ok := en.StyleProp(name)
	if !ok {
		return 0, false
	}
	v = strings.TrimSuffix(v, "px")
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// Runs fn with the given style properties temporarily overridden. The previous style string is restored exactly, even if fn panics.
func WithStyleProps(en *EmbedNode, props map[string]string, fn func()) {
	orig := en.style
	defer en.SetStyle(orig)
	for k, v := range props {
		en.SetStyleProp(k, v)
	}
	fn()
}

//----------

func parseStyle(s string) [][2]string {
	var u [][2]string
	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		u = append(u, [2]string{strings.TrimSpace(k), strings.TrimSpace(v)})
	}
	return u
}

func formatStyle(props [][2]string) string {
	u := make([]string, 0, len(props))
	for _, p := range props {
		u = append(u, p[0]+": "+p[1])
	}
	return strings.Join(u, "; ")
}
