package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/harbdog/raycaster-go/geom"

	"coinshower/logging"
	"coinshower/model"
)

// drawable is a node the renderer knows how to composite.
type drawable interface {
	draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float64)
}

// -- transform

// Transform is the placement shared by every node. Children inherit their
// parent's transform and alpha.
type Transform struct {
	pos              geom.Vector2
	anchorX, anchorY float64
	scaleX, scaleY   float64
	angle            float64
	alpha            float64
}

func newTransform() Transform {
	return Transform{scaleX: 1, scaleY: 1, alpha: 1}
}

func (t *Transform) SetAnchor(x, y float64)       { t.anchorX, t.anchorY = x, y }
func (t *Transform) Anchor() (float64, float64)   { return t.anchorX, t.anchorY }
func (t *Transform) Position() geom.Vector2       { return t.pos }
func (t *Transform) SetPosition(pos geom.Vector2) { t.pos = pos }
func (t *Transform) SetScale(x, y float64)        { t.scaleX, t.scaleY = x, y }
func (t *Transform) Scale() (float64, float64)    { return t.scaleX, t.scaleY }
func (t *Transform) SetAlpha(alpha float64)       { t.alpha = geom.Clamp(alpha, 0, 1) }
func (t *Transform) Alpha() float64               { return t.alpha }
func (t *Transform) Rotation() float64            { return t.angle }
func (t *Transform) SetRotation(radians float64)  { t.angle = radians }

// GeoM returns the local transform for content of size w x h: move the
// anchor to the origin, scale, rotate, then place.
func (t *Transform) GeoM(w, h float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-t.anchorX*w, -t.anchorY*h)
	m.Scale(t.scaleX, t.scaleY)
	m.Rotate(t.angle)
	m.Translate(t.pos.X, t.pos.Y)
	return m
}

// -- container

type Container struct {
	Transform
	children []drawable
}

func NewContainer() *Container {
	return &Container{Transform: newTransform()}
}

// AddChild appends a node created by this engine. Foreign nodes are
// ignored with a warning.
func (c *Container) AddChild(child model.Node) {
	d, ok := child.(drawable)
	if !ok {
		logging.Warnf("container: cannot add %T, not an engine node", child)
		return
	}
	c.children = append(c.children, d)
}

func (c *Container) Len() int {
	return len(c.children)
}

func (c *Container) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float64) {
	alpha *= c.alpha
	if alpha <= 0 {
		return
	}
	m := c.GeoM(0, 0)
	m.Concat(parent)
	for _, child := range c.children {
		child.draw(dst, m, alpha)
	}
}

// -- sprite

type Sprite struct {
	Transform
	name    string
	texture *ebiten.Image
}

// NewSprite binds a sprite to a texture. A nil texture is allowed; such a
// sprite keeps its transform but draws nothing.
func NewSprite(name string, texture *ebiten.Image) *Sprite {
	return &Sprite{Transform: newTransform(), name: name, texture: texture}
}

func (s *Sprite) Name() string           { return s.name }
func (s *Sprite) Texture() *ebiten.Image { return s.texture }
func (s *Sprite) SetTexture(name string, texture *ebiten.Image) {
	s.name, s.texture = name, texture
}

func (s *Sprite) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float64) {
	alpha *= s.alpha
	if s.texture == nil || alpha <= 0 {
		return
	}
	b := s.texture.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.GeoM(float64(b.Dx()), float64(b.Dy()))
	op.GeoM.Concat(parent)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.texture, op)
}

// -- text

type Text struct {
	Transform
	label       string
	face        text.Face
	color       color.Color
	lineSpacing float64
}

func NewText(label string, face text.Face, clr color.Color, lineSpacing float64) *Text {
	return &Text{
		Transform:   newTransform(),
		label:       label,
		face:        face,
		color:       clr,
		lineSpacing: lineSpacing,
	}
}

func (t *Text) Label() string         { return t.label }
func (t *Text) SetLabel(label string) { t.label = label }

func (t *Text) draw(dst *ebiten.Image, parent ebiten.GeoM, alpha float64) {
	alpha *= t.alpha
	if t.face == nil || t.label == "" || alpha <= 0 {
		return
	}
	w, h := text.Measure(t.label, t.face, t.lineSpacing)

	op := &text.DrawOptions{}
	op.GeoM = t.GeoM(w, h)
	op.GeoM.Concat(parent)
	op.ColorScale.ScaleWithColor(t.color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.LineSpacing = t.lineSpacing
	text.Draw(dst, t.label, t.face, op)
}
