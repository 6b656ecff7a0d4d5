package utils

// Shortcut is a (prefix, suffix) keyboard pair. An empty prefix means the
// bare key.
type Shortcut struct {
	Prefix string
	Suffix string
}

var shortcutPrefixes = []string{"", "ctrl", "shift", "ctrl shift"}

// AssignShortcut picks a keyboard shortcut for a new label: each lowercase
// letter of the label text is tried in order, bare key first, then with each
// modifier prefix. Returns false when every candidate is taken.
func AssignShortcut(text string, taken map[Shortcut]bool) (Shortcut, bool) {
	for _, r := range text {
		if r < 'a' || r > 'z' {
			continue
		}
		suffix := string(r)
		for _, prefix := range shortcutPrefixes {
			sc := Shortcut{Prefix: prefix, Suffix: suffix}
			if !taken[sc] {
				return sc, true
			}
		}
	}
	return Shortcut{}, false
}
