package object

import (
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/entity"
)

// Star scrolls down the background and wraps to the top at a new column.
type Star struct {
	Actor
}

// NewStar places a star at (x, y).
func NewStar(x, y float64) *Star {
	s := &Star{}
	s.Rect = entity.Rect{X: x, Y: y, W: config.StarSize, H: config.StarSize}
	return s
}

func (s *Star) Kind() entity.Kind { return entity.KindStar }

func (s *Star) Update() {
	s.Rect.Y += config.StarStep
	if s.Rect.Y < 0 || s.Rect.Y > config.ViewHeight {
		s.Rect.Y = 0
		if s.env.Rand != nil {
			s.Rect.X = s.env.Rand.Float64() * config.ViewWidth
		}
	}
}

func (s *Star) Draw(c *draw.Canvas) {
	c.SetFloat(s.Rect.X, s.Rect.Y)
}
