package branchline

// Detail card metrics, in pixels.
const (
	CardWidth       = 192.0
	CardPadding     = 16.0
	CardOffsetY     = 32.0 // gap between the node center and the card top
	CardTitleHeight = 24.0
	CardTitleGap    = 4.0
	CardDetailLine  = 20.0
	CardBorderWidth = 1.0

	cardTitleSize  = 16.0
	cardDetailSize = 14.0

	cardRenderLayer = 200
)

// CardContent is the text shown by a detail card.
type CardContent struct {
	Title  string
	Detail string
}

// cardHeight is the fixed height of a two-line card.
func cardHeight() float64 {
	return CardPadding + CardTitleHeight + CardTitleGap + CardDetailLine + CardPadding
}

// frame returns the card rectangle in the owning node's local space,
// horizontally centered below the origin.
func (c *CardContent) frame() Rect {
	return Rect{
		X:      -CardWidth / 2,
		Y:      CardOffsetY,
		Width:  CardWidth,
		Height: cardHeight(),
	}
}

// titleOrigin and detailOrigin return the top-left of each text line in local
// space.
func (c *CardContent) titleOrigin() Vec2 {
	f := c.frame()
	return Vec2{X: f.X + CardPadding, Y: f.Y + CardPadding}
}

func (c *CardContent) detailOrigin() Vec2 {
	o := c.titleOrigin()
	return Vec2{X: o.X, Y: o.Y + CardTitleHeight + CardTitleGap}
}
