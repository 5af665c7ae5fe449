package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/carrot-jump/internal/assets"
)

const testManifest = `
textures:
  - {key: block, width: 20, height: 20, color: white}
  - {key: ledge, width: 100, height: 20, color: green}
  - key: quad
    width: 480
    height: 640
    color: yellow
    art: ["ab", "cd"]
sounds:
  - {key: ping, wave: sine, from_hz: 100, to_hz: 200, duration_ms: 10}
`

const testDT = 1.0 / 60.0

func testCatalog(t *testing.T) *assets.Catalog {
	t.Helper()
	c, err := assets.Load([]byte(testManifest))
	require.NoError(t, err)
	return c
}

// funcScene is a scene assembled from closures.
type funcScene struct {
	key    string
	calls  []string
	load   func(ctx *Context) error
	start  func(ctx *Context) error
	update func(ctx *Context)
}

func (s *funcScene) Key() string { return s.key }

func (s *funcScene) Init(*Context) { s.calls = append(s.calls, "init") }

func (s *funcScene) LoadAssets(ctx *Context) error {
	s.calls = append(s.calls, "load")
	if s.load != nil {
		return s.load(ctx)
	}
	for _, k := range []string{"block", "ledge", "quad"} {
		if err := ctx.LoadTexture(k); err != nil {
			return err
		}
	}
	return ctx.LoadSound("ping")
}

func (s *funcScene) Start(ctx *Context) error {
	s.calls = append(s.calls, "start")
	if s.start != nil {
		return s.start(ctx)
	}
	return nil
}

func (s *funcScene) Update(ctx *Context) {
	s.calls = append(s.calls, "update")
	if s.update != nil {
		s.update(ctx)
	}
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	m := NewManager(testCatalog(t), 480, 640, 200)
	m.Register(&funcScene{key: "test"})
	require.NoError(t, m.Start("test"))
	return m.Context()
}
