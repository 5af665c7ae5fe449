package engine

import (
	"image/color"

	"github.com/vovakirdan/carrot-jump/internal/core"
)

// TextStyle holds the colours a text is drawn with.
type TextStyle struct {
	Color core.Color
	RGB   color.RGBA
}

// Text is a HUD label. Texts are fixed to the viewport.
type Text struct {
	X, Y float64

	// OriginX anchors the label horizontally: 0 left, 0.5 centre, 1 right.
	OriginX float64
	Style   TextStyle

	content string
	visible bool
}

// Text returns the current content.
func (t *Text) Text() string { return t.content }

// SetText replaces the content.
func (t *Text) SetText(s string) { t.content = s }

// SetOrigin sets the horizontal anchor.
func (t *Text) SetOrigin(x float64) *Text {
	t.OriginX = x
	return t
}

// Visible reports whether the label is drawn.
func (t *Text) Visible() bool { return t.visible }

// SetVisible shows or hides the label.
func (t *Text) SetVisible(v bool) { t.visible = v }
