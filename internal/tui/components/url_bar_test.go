package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeRunes(t *testing.T, bar *URLBar, s string) *URLBar {
	t.Helper()
	for _, r := range s {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		updated, _ := bar.Update(msg)
		bar = updated.(*URLBar)
	}
	return bar
}

func TestNewURLBar(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		bar := NewURLBar()
		assert.Equal(t, "", bar.Value())
	})

	t.Run("starts unfocused", func(t *testing.T) {
		bar := NewURLBar()
		assert.False(t, bar.Focused())
	})
}

func TestURLBar_Typing(t *testing.T) {
	t.Run("appends typed characters", func(t *testing.T) {
		bar := NewURLBar()
		bar = typeRunes(t, bar, "http://x.io")

		assert.Equal(t, "http://x.io", bar.Value())
	})

	t.Run("appends spaces", func(t *testing.T) {
		bar := NewURLBar()
		bar = typeRunes(t, bar, "a b")

		assert.Equal(t, "a b", bar.Value())
	})

	t.Run("accepts lowercase section letters as text", func(t *testing.T) {
		bar := NewURLBar()
		bar = typeRunes(t, bar, "hbp")

		assert.Equal(t, "hbp", bar.Value())
	})

	t.Run("backspace removes the last character", func(t *testing.T) {
		bar := NewURLBar()
		bar = typeRunes(t, bar, "abc")

		updated, _ := bar.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		bar = updated.(*URLBar)

		assert.Equal(t, "ab", bar.Value())
	})

	t.Run("backspace on empty input is a no-op", func(t *testing.T) {
		bar := NewURLBar()

		updated, _ := bar.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		bar = updated.(*URLBar)

		assert.Equal(t, "", bar.Value())
	})

	t.Run("pasted runes are appended together", func(t *testing.T) {
		bar := NewURLBar()

		updated, _ := bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("http://")})
		bar = updated.(*URLBar)

		assert.Equal(t, "http://", bar.Value())
	})
}

func TestURLBar_IgnoredKeys(t *testing.T) {
	t.Run("cursor movement keys change nothing", func(t *testing.T) {
		bar := NewURLBar()
		bar = typeRunes(t, bar, "abc")

		for _, keyType := range []tea.KeyType{
			tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd,
			tea.KeyDelete, tea.KeyTab, tea.KeyCtrlA, tea.KeyCtrlE,
		} {
			updated, _ := bar.Update(tea.KeyMsg{Type: keyType})
			bar = updated.(*URLBar)
		}

		assert.Equal(t, "abc", bar.Value())
	})

	t.Run("typing after ignored keys still appends at the end", func(t *testing.T) {
		bar := NewURLBar()
		bar = typeRunes(t, bar, "ab")

		updated, _ := bar.Update(tea.KeyMsg{Type: tea.KeyLeft})
		bar = updated.(*URLBar)
		bar = typeRunes(t, bar, "c")

		assert.Equal(t, "abc", bar.Value())
	})
}

func TestURLBar_SetValue(t *testing.T) {
	t.Run("replaces the text", func(t *testing.T) {
		bar := NewURLBar()
		bar.SetValue("http://example.com")

		assert.Equal(t, "http://example.com", bar.Value())
	})

	t.Run("typing continues at the end", func(t *testing.T) {
		bar := NewURLBar()
		bar.SetValue("http://example.com")
		bar = typeRunes(t, bar, "/v1")

		assert.Equal(t, "http://example.com/v1", bar.Value())
	})
}

func TestURLBar_View(t *testing.T) {
	t.Run("shows the typed URL", func(t *testing.T) {
		bar := NewURLBar()
		bar.SetSize(40, 4)
		bar = typeRunes(t, bar, "http://x.io")

		assert.Contains(t, bar.View(), "http://x.io")
	})

	t.Run("renders nothing before sizing", func(t *testing.T) {
		bar := NewURLBar()
		assert.Equal(t, "", bar.View())
	})
}

func TestURLBar_Focus(t *testing.T) {
	t.Run("focus and blur are tracked", func(t *testing.T) {
		bar := NewURLBar()

		bar.Focus()
		assert.True(t, bar.Focused())

		bar.Blur()
		assert.False(t, bar.Focused())
	})
}
