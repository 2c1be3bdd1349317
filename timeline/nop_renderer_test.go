package timeline

import (
	"github.com/harbdog/raycaster-go/geom"

	"coinshower/model"
)

type nopSprite struct {
	pos geom.Vector2
	rot float64
}

func (s *nopSprite) SetAnchor(x, y float64)       {}
func (s *nopSprite) Position() geom.Vector2       { return s.pos }
func (s *nopSprite) SetPosition(pos geom.Vector2) { s.pos = pos }
func (s *nopSprite) SetScale(x, y float64)        {}
func (s *nopSprite) SetAlpha(alpha float64)       {}
func (s *nopSprite) Rotation() float64            { return s.rot }
func (s *nopSprite) SetRotation(radians float64)  { s.rot = radians }

type nopContainer struct{}

func (nopContainer) AddChild(child model.Node) {}

type nopRenderer struct{}

func (nopRenderer) NewContainer() model.Container                         { return nopContainer{} }
func (nopRenderer) Sprite(name string) model.Sprite                       { return &nopSprite{} }
func (nopRenderer) Text(label string, style model.TextStyle) model.Sprite { return &nopSprite{} }
