package model

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
)

// CoinShowerConfig tunes a coin shower. Zero values fall back to the defaults.
type CoinShowerConfig struct {
	Start           time.Duration `mapstructure:"start"`
	Duration        time.Duration `mapstructure:"duration"`
	CoinInterval    time.Duration `mapstructure:"coin_interval"`
	TotalCoins      int           `mapstructure:"total_coins"`
	MessageText     string        `mapstructure:"message_text"`
	MessageFontSize float64       `mapstructure:"message_font_size"`
	MessageColor    uint32        `mapstructure:"message_color"`
}

func DefaultCoinShowerConfig() CoinShowerConfig {
	return CoinShowerConfig{
		Duration:        6 * time.Second,
		CoinInterval:    300 * time.Millisecond,
		TotalCoins:      300,
		MessageText:     "Congratulations! You won!, Try new games",
		MessageFontSize: 24,
		MessageColor:    0xFFFFFF,
	}
}

// WithDefaults returns the defaults overridden by every non-zero field of c.
func (c CoinShowerConfig) WithDefaults() CoinShowerConfig {
	cfg := DefaultCoinShowerConfig()
	if err := copier.CopyWithOption(&cfg, &c, copier.Option{IgnoreEmpty: true}); err != nil {
		return DefaultCoinShowerConfig()
	}
	return cfg
}

// RGBA converts a 0xRRGGBB value into an opaque color.
func RGBA(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var messagePosition = geom.Vector2{X: 400, Y: 50}

// CoinShower rains gold coins from above the screen under a congratulation
// message. Coins spawn one by one on a fixed interval up to TotalCoins.
type CoinShower struct {
	cfg      CoinShowerConfig
	renderer Renderer
	rng      *rand.Rand

	root    Container
	message Sprite
	coins   []*Coin
}

func NewCoinShower(renderer Renderer, cfg CoinShowerConfig, rng *rand.Rand) *CoinShower {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &CoinShower{
		cfg:      cfg.WithDefaults(),
		renderer: renderer,
		rng:      rng,
		root:     renderer.NewContainer(),
	}

	c.message = renderer.Text(c.cfg.MessageText, TextStyle{
		FontSize: c.cfg.MessageFontSize,
		Color:    RGBA(c.cfg.MessageColor),
	})
	c.message.SetAnchor(0.5, 0.5)
	c.message.SetPosition(messagePosition)
	c.root.AddChild(c.message)

	return c
}

func (c *CoinShower) Start() time.Duration    { return c.cfg.Start }
func (c *CoinShower) Duration() time.Duration { return c.cfg.Duration }
func (c *CoinShower) Root() Node              { return c.root }
func (c *CoinShower) Config() CoinShowerConfig {
	return c.cfg
}

// CoinsAdded is the number of coins spawned so far.
func (c *CoinShower) CoinsAdded() int {
	return len(c.coins)
}

func (c *CoinShower) Coins() []*Coin {
	return c.coins
}

// AnimTick advances the shower one frame. At most one coin is spawned per
// call, so a slow frame rate delays spawning rather than bursting.
func (c *CoinShower) AnimTick(nt float64, lt, gt time.Duration) {
	added := len(c.coins)
	if added < c.cfg.TotalCoins && lt >= time.Duration(added)*c.cfg.CoinInterval {
		c.spawn(added)
	}

	pulse := Pulse(gt, c.cfg.Duration)
	for _, coin := range c.coins {
		coin.Update(c.rng, pulse)
	}
}

func (c *CoinShower) spawn(index int) {
	coin := NewCoin(c.renderer.Sprite(CoinTextureName(index)), c.rng)
	c.root.AddChild(coin.Sprite)
	c.coins = append(c.coins, coin)
}
