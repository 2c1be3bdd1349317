package engine

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"coinshower/logging"
)

var (
	goRegularOnce sync.Once
	goRegular     *truetype.Font
)

// NewFace returns the Go Regular face at the given size in pixels, or the
// fixed 7x13 bitmap face if the TrueType font cannot be parsed.
func NewFace(size float64) font.Face {
	goRegularOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			logging.Warnf("font: falling back to basic face: %v", err)
			return
		}
		goRegular = f
	})

	if goRegular == nil || size <= 0 {
		return basicfont.Face7x13
	}
	return truetype.NewFace(goRegular, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
