package engine

// Camera is the viewport onto the world. Scroll is the world position of the
// viewport's top-left corner.
type Camera struct {
	Width, Height    float64
	ScrollX, ScrollY float64

	target    *Sprite
	deadzone  bool
	deadzoneW float64
	deadzoneH float64
}

// NewCamera creates a camera with the given viewport size.
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// StartFollow makes the camera track the sprite from the next update.
func (c *Camera) StartFollow(s *Sprite) {
	c.target = s
}

// SetDeadzone sets a rectangle centred on the viewport inside which the
// target can move without scrolling. A zero dimension keeps the target
// centred on that axis.
func (c *Camera) SetDeadzone(w, h float64) {
	c.deadzone = true
	c.deadzoneW, c.deadzoneH = w, h
}

// Update scrolls the camera so the target stays inside the dead-zone.
func (c *Camera) Update() {
	if c.target == nil {
		return
	}
	tx, ty := c.target.X, c.target.Y

	if !c.deadzone {
		c.ScrollX = tx - c.Width/2
		c.ScrollY = ty - c.Height/2
		return
	}

	c.ScrollX += follow(tx, c.ScrollX+c.Width/2, c.deadzoneW)
	c.ScrollY += follow(ty, c.ScrollY+c.Height/2, c.deadzoneH)
}

// follow returns how far a zone of the given size centred on mid must move
// to contain pos.
func follow(pos, mid, size float64) float64 {
	lo, hi := mid-size/2, mid+size/2
	switch {
	case pos < lo:
		return pos - lo
	case pos > hi:
		return pos - hi
	default:
		return 0
	}
}
