package model

import (
	"github.com/harbdog/raycaster-go/geom"
)

type fakeSprite struct {
	texture          string
	label            string
	style            TextStyle
	anchorX, anchorY float64
	pos              geom.Vector2
	scaleX, scaleY   float64
	alpha            float64
	rotation         float64
}

func (s *fakeSprite) SetAnchor(x, y float64)       { s.anchorX, s.anchorY = x, y }
func (s *fakeSprite) Position() geom.Vector2       { return s.pos }
func (s *fakeSprite) SetPosition(pos geom.Vector2) { s.pos = pos }
func (s *fakeSprite) SetScale(x, y float64)        { s.scaleX, s.scaleY = x, y }
func (s *fakeSprite) SetAlpha(alpha float64)       { s.alpha = alpha }
func (s *fakeSprite) Rotation() float64            { return s.rotation }
func (s *fakeSprite) SetRotation(radians float64)  { s.rotation = radians }

type fakeContainer struct {
	children []Node
}

func (c *fakeContainer) AddChild(child Node) {
	c.children = append(c.children, child)
}

type fakeRenderer struct {
	containers []*fakeContainer
	sprites    []*fakeSprite
	texts      []*fakeSprite
}

func (r *fakeRenderer) NewContainer() Container {
	c := &fakeContainer{}
	r.containers = append(r.containers, c)
	return c
}

func (r *fakeRenderer) Sprite(textureName string) Sprite {
	s := &fakeSprite{texture: textureName, scaleX: 1, scaleY: 1, alpha: 1}
	r.sprites = append(r.sprites, s)
	return s
}

func (r *fakeRenderer) Text(label string, style TextStyle) Sprite {
	s := &fakeSprite{label: label, style: style, scaleX: 1, scaleY: 1, alpha: 1}
	r.texts = append(r.texts, s)
	return s
}
