package model

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	// CoinTextureCount is the number of frames in the CoinsGold set.
	CoinTextureCount = 9

	coinSpawnWidth = 800.0
	coinSpawnY     = -150.0
	coinFallSpeed  = 3.0
	coinJitter     = 1.0

	coinBoundBottom = 700.0
	coinBoundLeft   = -50.0
	coinBoundRight  = 850.0

	// coinSpin is added to the rotation every frame
	coinSpin = math.Pi / 190 * 2
)

// CoinTextureName returns the cached texture name of the i-th gold coin frame.
func CoinTextureName(i int) string {
	return fmt.Sprintf("CoinsGold%03d", i%CoinTextureCount)
}

// CoinTexturePath returns where the i-th gold coin frame lives in the asset tree.
func CoinTexturePath(i int) string {
	return fmt.Sprintf("gfx/CoinsGold/%03d.png", i%CoinTextureCount)
}

// Coin is a single particle of the coin shower. It is recycled in place
// once it leaves the visible area, never removed.
type Coin struct {
	Sprite
}

func NewCoin(sprite Sprite, rng *rand.Rand) *Coin {
	c := &Coin{Sprite: sprite}
	c.SetAnchor(0.5, 0.5)
	c.respawn(rng)
	return c
}

func (c *Coin) respawn(rng *rand.Rand) {
	c.SetPosition(geom.Vector2{X: rng.Float64() * coinSpawnWidth, Y: coinSpawnY})
}

// OutOfBounds reports whether the coin has left the region it is allowed to fall through.
func (c *Coin) OutOfBounds() bool {
	pos := c.Position()
	return pos.Y > coinBoundBottom || pos.X < coinBoundLeft || pos.X > coinBoundRight
}

// Update moves the coin one frame: a little horizontal jitter and a constant
// fall, then the pulse is applied to both scale and alpha.
func (c *Coin) Update(rng *rand.Rand, pulse float64) {
	pos := c.Position()
	pos.X += rng.Float64()*2*coinJitter - coinJitter
	pos.Y += coinFallSpeed
	c.SetPosition(pos)

	if c.OutOfBounds() {
		c.respawn(rng)
	}

	c.SetScale(pulse, pulse)
	c.SetAlpha(pulse)
	c.SetRotation(c.Rotation() + coinSpin)
}

// Pulse maps elapsed time onto the [0,1] sine wave shared by scale and alpha.
func Pulse(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 1
	}
	nt := float64(elapsed%period) / float64(period)
	return geom.Clamp(math.Sin(nt*math.Pi*2)*0.5+0.5, 0, 1)
}
