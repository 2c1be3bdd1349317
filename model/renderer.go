package model

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
)

// Node is any element that can be placed in the scene graph.
type Node interface{}

// Container groups nodes so they are composited together.
type Container interface {
	Node
	AddChild(child Node)
}

// Sprite is a renderer-native drawable with a mutable transform.
type Sprite interface {
	Node
	SetAnchor(x, y float64)
	Position() geom.Vector2
	SetPosition(pos geom.Vector2)
	SetScale(x, y float64)
	SetAlpha(alpha float64)
	Rotation() float64
	SetRotation(radians float64)
}

type TextStyle struct {
	FontSize float64
	Color    color.Color
}

// Renderer is the capability effects use to build their visual sub-tree.
type Renderer interface {
	NewContainer() Container

	// Sprite returns a sprite bound to the named cached texture. An unknown
	// name still yields a sprite, it just draws nothing.
	Sprite(textureName string) Sprite

	Text(label string, style TextStyle) Sprite
}
