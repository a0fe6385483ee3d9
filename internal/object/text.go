package object

import (
	"strconv"

	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/entity"
)

// Text is a static message centered in the view.
type Text struct {
	entity.Base
	Value string
}

// NewText centers value in the view.
func NewText(value string) *Text {
	t := &Text{Value: value}
	t.Rect = entity.Rect{X: config.ViewWidth / 2, Y: config.ViewHeight / 2}
	return t
}

func (t *Text) Kind() entity.Kind { return entity.KindText }

func (t *Text) Draw(c *draw.Canvas) {
	if t.Value == "" {
		return
	}
	c.AddLabel(draw.Label{X: t.Rect.X, Y: t.Rect.Y, Text: t.Value, Align: draw.AlignCenter})
}

// Scoreboard shows the score in the top right corner.
type Scoreboard struct {
	entity.Base
	Score int
}

func NewScoreboard() *Scoreboard {
	s := &Scoreboard{}
	s.Rect = entity.Rect{X: config.ViewWidth - 1, Y: 0}
	return s
}

func (s *Scoreboard) Kind() entity.Kind { return entity.KindOther }

func (s *Scoreboard) Draw(c *draw.Canvas) {
	c.AddLabel(draw.Label{X: s.Rect.X, Y: s.Rect.Y, Text: "SCORE " + strconv.Itoa(s.Score), Align: draw.AlignRight})
}

// LifePanel shows one icon per life in the top left corner, remaining lives filled.
type LifePanel struct {
	entity.Base
	Lives int
	Total int
}

func NewLifePanel(total int) *LifePanel {
	p := &LifePanel{Lives: total, Total: total}
	p.Rect = entity.Rect{X: 1, Y: 1, W: 3, H: 3}
	return p
}

func (p *LifePanel) Kind() entity.Kind { return entity.KindOther }

func (p *LifePanel) Draw(c *draw.Canvas) {
	for i := 0; i < p.Total; i++ {
		r := p.Rect.Translate(float64(i)*(p.Rect.W+1), 0)
		if i < p.Lives {
			c.DrawSprite(r, lifeSprite)
		} else {
			c.DrawSprite(r, lostLifeSprite)
		}
	}
}
