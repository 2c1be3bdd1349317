package engine

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"coinshower/logging"
)

// Resource names an image file to load into the texture cache.
type Resource struct {
	Name string
	Path string
}

// LoadResult is delivered once per Load, holding whatever resolved.
type LoadResult struct {
	Textures map[string]*ebiten.Image
	Failed   []string
}

type decoded struct {
	images map[string]image.Image
	failed []string
}

// Loader reads a batch of images in the background. The batch completes
// once; entries that fail are logged and left out.
type Loader struct {
	fsys      fs.FS
	resources []Resource
	done      chan decoded
	started   bool

	// newImage turns a decoded image into a texture on the caller's goroutine.
	newImage func(image.Image) *ebiten.Image
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:     fsys,
		done:     make(chan decoded, 1),
		newImage: ebiten.NewImageFromImage,
	}
}

func (l *Loader) Add(name, path string) {
	l.resources = append(l.resources, Resource{Name: name, Path: path})
}

func (l *Loader) Resources() []Resource {
	return l.resources
}

// Load starts decoding every added resource. Calling it twice is a no-op.
func (l *Loader) Load() {
	if l.started {
		return
	}
	l.started = true

	resources := append([]Resource(nil), l.resources...)
	go func() {
		result := decoded{images: make(map[string]image.Image, len(resources))}
		for _, res := range resources {
			img, err := decodeImage(l.fsys, res.Path)
			if err != nil {
				logging.Warnf("loader: %s: %v", res.Name, err)
				result.failed = append(result.failed, res.Name)
				continue
			}
			result.images[res.Name] = img
		}
		l.done <- result
	}()
}

// Poll returns the batch result once it is ready without blocking.
func (l *Loader) Poll() (LoadResult, bool) {
	select {
	case d := <-l.done:
		return l.finish(d), true
	default:
		return LoadResult{}, false
	}
}

// Wait blocks until the batch completes.
func (l *Loader) Wait() LoadResult {
	return l.finish(<-l.done)
}

func (l *Loader) finish(d decoded) LoadResult {
	res := LoadResult{
		Textures: make(map[string]*ebiten.Image, len(d.images)),
		Failed:   d.failed,
	}
	for name, img := range d.images {
		res.Textures[name] = l.newImage(img)
	}
	return res
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
