package engine

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureCache is the name -> texture lookup populated by the loader and
// queried whenever a sprite is created.
type TextureCache struct {
	textures map[string]*ebiten.Image
}

func NewTextureCache() *TextureCache {
	return &TextureCache{
		textures: make(map[string]*ebiten.Image),
	}
}

func (t *TextureCache) Put(name string, texture *ebiten.Image) {
	if texture == nil {
		return
	}
	t.textures[name] = texture
}

// Lookup returns the texture registered under name and whether it exists.
func (t *TextureCache) Lookup(name string) (*ebiten.Image, bool) {
	tex, ok := t.textures[name]
	return tex, ok
}

func (t *TextureCache) Len() int {
	return len(t.textures)
}

func (t *TextureCache) Names() []string {
	names := make([]string, 0, len(t.textures))
	for name := range t.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
