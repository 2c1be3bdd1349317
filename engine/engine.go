// Package engine is a small retained-mode 2-D scene graph drawn with
// Ebitengine: containers, sprites bound to cached textures, and text.
package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"coinshower/logging"
	"coinshower/model"
)

type Renderer struct {
	textures   *TextureCache
	stage      *Container
	background color.Color
	faces      map[float64]text.Face
}

func NewRenderer(textures *TextureCache, background color.Color) *Renderer {
	if textures == nil {
		textures = NewTextureCache()
	}
	return &Renderer{
		textures:   textures,
		stage:      NewContainer(),
		background: background,
		faces:      make(map[float64]text.Face),
	}
}

// Stage is the root of the scene.
func (r *Renderer) Stage() *Container {
	return r.stage
}

func (r *Renderer) Textures() *TextureCache {
	return r.textures
}

func (r *Renderer) NewContainer() model.Container {
	return NewContainer()
}

// Sprite creates a sprite bound to the named cached texture. Unknown names
// are reported and give a sprite that draws nothing.
func (r *Renderer) Sprite(name string) model.Sprite {
	s := NewSprite(name, nil)
	r.SetTexture(s, name)
	return s
}

// SetTexture rebinds s to the named texture, reporting whether it exists.
func (r *Renderer) SetTexture(s *Sprite, name string) bool {
	tex, ok := r.textures.Lookup(name)
	if !ok {
		logging.Warnf("texture %q does not exist", name)
	}
	s.SetTexture(name, tex)
	return ok
}

func (r *Renderer) Text(label string, style model.TextStyle) model.Sprite {
	clr := style.Color
	if clr == nil {
		clr = color.White
	}
	return NewText(label, r.Face(style.FontSize), clr, style.FontSize*1.2)
}

// Face returns the cached text face for a font size.
func (r *Renderer) Face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := text.NewGoXFace(NewFace(size))
	r.faces[size] = f
	return f
}

// Render clears the screen and composites the whole stage.
func (r *Renderer) Render(screen *ebiten.Image) {
	if r.background != nil {
		screen.Fill(r.background)
	}
	r.stage.draw(screen, ebiten.GeoM{}, 1)
}
