package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/carrot-jump/internal/core"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		want       Viewport
	}{
		{"wide terminal", 80, 24, Viewport{Cols: 36, Rows: 24, OffsetX: 22, OffsetY: 0}},
		{"narrow terminal", 20, 24, Viewport{Cols: 20, Rows: 13, OffsetX: 0, OffsetY: 5}},
		{"empty", 0, 0, Viewport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := FitViewport(480, 640, tt.cols, tt.rows)
			assert.Equal(t, tt.want.Cols, vp.Cols)
			assert.Equal(t, tt.want.Rows, vp.Rows)
			assert.Equal(t, tt.want.OffsetX, vp.OffsetX)
			assert.Equal(t, tt.want.OffsetY, vp.OffsetY)
		})
	}
}

func TestRasterizeSamplesArt(t *testing.T) {
	c := testCatalog(t)
	quad, _ := c.Texture("quad")
	f := Frame{
		Width:   480,
		Height:  640,
		Sprites: []SpriteView{{Box: core.Box{MaxX: 480, MaxY: 640}, Texture: quad}},
	}
	dst := core.NewScreen(36, 24)
	Rasterize(f, dst)

	assert.Equal(t, 'a', dst.Get(0, 0))
	assert.Equal(t, 'b', dst.Get(35, 0))
	assert.Equal(t, 'c', dst.Get(0, 23))
	assert.Equal(t, 'd', dst.Get(35, 23))
	assert.Equal(t, core.ColorYellow, dst.GetCell(0, 0).Color)
}

func TestRasterizeBordersAndText(t *testing.T) {
	f := Frame{
		Width:  480,
		Height: 640,
		Texts:  []TextView{{X: 240, Y: 10, OriginX: 0.5, Content: "Carrots: 3", Color: core.ColorBrightMagenta}},
	}
	dst := core.NewScreen(80, 24)
	vp := Rasterize(f, dst)

	assert.Equal(t, '│', dst.Get(vp.OffsetX-1, 5))
	assert.Equal(t, '│', dst.Get(vp.OffsetX+vp.Cols, 5))
	assert.True(t, strings.Contains(dst.Row(0), "Carrots: 3"))
	idx := -1
	for i, r := range []rune(dst.Row(0)) {
		if r == 'C' {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, core.ColorBrightMagenta, dst.GetCell(idx, 0).Color)
}

func TestRasterizeTinySprite(t *testing.T) {
	c := testCatalog(t)
	block, _ := c.Texture("block")
	f := Frame{
		Width:   480,
		Height:  640,
		Sprites: []SpriteView{{Box: core.BoxAround(241, 330, 2, 2), Texture: block}},
	}
	dst := core.NewScreen(36, 24)
	Rasterize(f, dst)
	assert.Equal(t, 1, strings.Count(dst.String(), "█"))
}

func TestRasterizeClipsOffscreen(t *testing.T) {
	c := testCatalog(t)
	block, _ := c.Texture("block")
	f := Frame{
		Width:   480,
		Height:  640,
		Sprites: []SpriteView{{Box: core.BoxAround(240, -500, 20, 20), Texture: block}},
	}
	dst := core.NewScreen(36, 24)
	Rasterize(f, dst)
	assert.Equal(t, 0, strings.Count(dst.String(), "█"))
}
