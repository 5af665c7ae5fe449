package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carrot-jump/internal/assets"
	"github.com/vovakirdan/carrot-jump/internal/audio"
	"github.com/vovakirdan/carrot-jump/internal/core"
)

// Scene is one screen of the game. The manager runs Init, LoadAssets and
// Start once per start, then Update once per frame.
type Scene interface {
	Key() string
	Init(ctx *Context)
	LoadAssets(ctx *Context) error
	Start(ctx *Context) error
	Update(ctx *Context)
}

// Loader resolves asset keys. *assets.Catalog implements it.
type Loader interface {
	Texture(key string) (*assets.Texture, bool)
	Sound(key string) (*assets.Sound, bool)
}

// Context is everything a running scene can touch. Each scene start gets a
// fresh one.
type Context struct {
	World  *World
	Camera *Camera
	Input  *Keyboard

	Width, Height float64

	loader   Loader
	audio    audio.Player
	manager  *Manager
	textures map[string]*assets.Texture
	sounds   map[string]bool
	sprites  []*Sprite
	texts    []*Text
}

// LoadTexture registers a texture for use by this scene.
func (c *Context) LoadTexture(key string) error {
	t, ok := c.loader.Texture(key)
	if !ok {
		return fmt.Errorf("%w: texture %q", ErrUnknownAsset, key)
	}
	c.textures[key] = t
	return nil
}

// LoadSound registers a sound cue for use by this scene.
func (c *Context) LoadSound(key string) error {
	if _, ok := c.loader.Sound(key); !ok {
		return fmt.Errorf("%w: sound %q", ErrUnknownAsset, key)
	}
	c.sounds[key] = true
	return nil
}

// Texture returns a loaded texture.
func (c *Context) Texture(key string) (*assets.Texture, error) {
	t, ok := c.textures[key]
	if !ok {
		return nil, fmt.Errorf("%w: texture %q not loaded", ErrUnknownAsset, key)
	}
	return t, nil
}

// PlaySound plays a loaded cue. Cues that were never loaded are ignored.
func (c *Context) PlaySound(key string) {
	if c.sounds[key] {
		c.audio.Play(key)
	}
}

// AddImage adds a sprite without a body.
func (c *Context) AddImage(x, y float64, key string) (*Sprite, error) {
	t, err := c.Texture(key)
	if err != nil {
		return nil, err
	}
	s := newSprite(x, y, t)
	c.sprites = append(c.sprites, s)
	return s, nil
}

// AddSprite adds a sprite with a dynamic body affected by gravity.
func (c *Context) AddSprite(x, y float64, key string) (*Sprite, error) {
	s, err := c.AddImage(x, y, key)
	if err != nil {
		return nil, err
	}
	s.Body = newBody(s, false)
	c.World.add(s.Body)
	return s, nil
}

// AddGroup adds a pooled group of sprites using one texture.
func (c *Context) AddGroup(key string, kind BodyKind) (*Group, error) {
	t, err := c.Texture(key)
	if err != nil {
		return nil, err
	}
	return newGroup(c, t, kind), nil
}

// AddText adds a HUD label.
func (c *Context) AddText(x, y float64, content string, style TextStyle) *Text {
	t := &Text{X: x, Y: y, Style: style, content: content, visible: true}
	c.texts = append(c.texts, t)
	return t
}

// StartScene requests a transition. It takes effect after the current
// update returns and the rest of that frame is skipped.
func (c *Context) StartScene(key string) {
	c.manager.pending = key
}

// Manager owns the registered scenes and runs the active one.
type Manager struct {
	width, height float64
	gravity       float64
	loader        Loader
	audio         audio.Player

	scenes  map[string]Scene
	active  Scene
	ctx     *Context
	pending string
}

// NewManager creates a manager whose scenes see a world of the given size.
func NewManager(loader Loader, width, height, gravity float64) *Manager {
	return &Manager{
		width:   width,
		height:  height,
		gravity: gravity,
		loader:  loader,
		audio:   audio.Silent{},
		scenes:  make(map[string]Scene),
	}
}

// Register adds a scene under its key, replacing any previous one.
func (m *Manager) Register(s Scene) {
	m.scenes[s.Key()] = s
}

// SetAudio sets the player used by PlaySound. nil means silent.
func (m *Manager) SetAudio(p audio.Player) {
	if p == nil {
		p = audio.Silent{}
	}
	m.audio = p
	if m.ctx != nil {
		m.ctx.audio = p
	}
}

// Start starts the named scene with a fresh context.
func (m *Manager) Start(key string) error {
	m.pending = ""
	s, ok := m.scenes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, key)
	}

	input := NewKeyboard()
	if m.ctx != nil {
		input.carry(m.ctx.Input)
	}
	ctx := &Context{
		World:    NewWorld(m.gravity),
		Camera:   NewCamera(m.width, m.height),
		Input:    input,
		Width:    m.width,
		Height:   m.height,
		loader:   m.loader,
		audio:    m.audio,
		manager:  m,
		textures: make(map[string]*assets.Texture),
		sounds:   make(map[string]bool),
	}

	s.Init(ctx)
	if err := s.LoadAssets(ctx); err != nil {
		return fmt.Errorf("engine: scene %q: load assets: %w", key, err)
	}
	if err := s.Start(ctx); err != nil {
		return fmt.Errorf("engine: scene %q: start: %w", key, err)
	}
	ctx.Camera.Update()

	m.active = s
	m.ctx = ctx
	log.Debug("scene started", "scene", key)
	return nil
}

// Step runs one frame: input, scene update, then physics and camera.
// A transition requested during the update replaces the rest of the frame.
func (m *Manager) Step(in core.InputFrame, dt float64) error {
	if m.active == nil {
		return fmt.Errorf("%w: no active scene", ErrUnknownScene)
	}

	m.ctx.Input.Update(in)
	if m.pending == "" {
		m.active.Update(m.ctx)
	}
	if m.pending != "" {
		return m.Start(m.pending)
	}

	m.ctx.World.Step(dt)
	m.ctx.Camera.Update()
	return nil
}

// ActiveKey returns the key of the running scene, or "" before the first start.
func (m *Manager) ActiveKey() string {
	if m.active == nil {
		return ""
	}
	return m.active.Key()
}

// Context returns the running scene's context.
func (m *Manager) Context() *Context {
	return m.ctx
}
