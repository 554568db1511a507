// Package ebitenhost binds pkg/platform's host interfaces to ebiten,
// the module's concrete rendering and input backend.
package ebitenhost

import (
	imagecolor "image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface adapts an *ebiten.Image to platform.RenderSurface.
type Surface struct {
	image *ebiten.Image
}

// NewSurface wraps an ebiten render target.
func NewSurface(image *ebiten.Image) *Surface {
	return &Surface{image: image}
}

func (s *Surface) FillRect(x, y, w, h float64, r, g, b, a uint8) {
	vector.DrawFilledRect(
		s.image,
		float32(x), float32(y), float32(w), float32(h),
		imagecolor.RGBA{R: r, G: g, B: b, A: a},
		false,
	)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(
		s.image,
		float32(x), float32(y), float32(w), float32(h),
		imagecolor.RGBA{A: 255},
		false,
	)
}

func (s *Surface) Width() int {
	if s.image == nil {
		return 0
	}
	return s.image.Bounds().Dx()
}

func (s *Surface) Height() int {
	if s.image == nil {
		return 0
	}
	return s.image.Bounds().Dy()
}
