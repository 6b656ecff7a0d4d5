package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignShortcut(t *testing.T) {
	taken := map[Shortcut]bool{}

	claim := func(text string) Shortcut {
		sc, ok := AssignShortcut(text, taken)
		assert.True(t, ok, "expected a shortcut for %q", text)
		taken[sc] = true
		return sc
	}

	// First letters are free, so labels get their bare initial.
	assert.Equal(t, Shortcut{Suffix: "p"}, claim("positive"))
	assert.Equal(t, Shortcut{Suffix: "n"}, claim("negative"))

	// "neutral" starts with n too; the bare key is taken, so the next
	// modifier in order wins.
	assert.Equal(t, Shortcut{Prefix: "ctrl", Suffix: "n"}, claim("neutral"))
}

func TestAssignShortcutModifierOrder(t *testing.T) {
	taken := map[Shortcut]bool{
		{Suffix: "x"}:                 true,
		{Prefix: "ctrl", Suffix: "x"}: true,
	}
	sc, ok := AssignShortcut("x", taken)
	assert.True(t, ok)
	assert.Equal(t, Shortcut{Prefix: "shift", Suffix: "x"}, sc)

	taken[sc] = true
	sc, ok = AssignShortcut("x", taken)
	assert.True(t, ok)
	assert.Equal(t, Shortcut{Prefix: "ctrl shift", Suffix: "x"}, sc)
}

func TestAssignShortcutSkipsNonLetters(t *testing.T) {
	sc, ok := AssignShortcut("B-2b", nil)
	assert.True(t, ok)
	assert.Equal(t, Shortcut{Suffix: "b"}, sc)
}

func TestAssignShortcutExhausted(t *testing.T) {
	taken := map[Shortcut]bool{}
	for _, prefix := range []string{"", "ctrl", "shift", "ctrl shift"} {
		taken[Shortcut{Prefix: prefix, Suffix: "a"}] = true
	}
	_, ok := AssignShortcut("aaa", taken)
	assert.False(t, ok)

	_, ok = AssignShortcut("123", taken)
	assert.False(t, ok)
}
