//go:build ebiten

package render

import (
	"image/color"

	"lifebox/internal/core"
	"lifebox/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter draws the visible part of a sandbox as one scaled image: the
// visible cell window is rasterised at one pixel per cell and stretched by
// the zoom factor.
type CellPainter struct {
	raster *core.ByteGrid
	img    *ebiten.Image
	buf    []byte
	on     color.RGBA
}

// NewCellPainter returns a painter that fills live cells with on.
func NewCellPainter(on color.RGBA) *CellPainter {
	return &CellPainter{raster: core.NewByteGrid(1, 1), on: on}
}

// Draw paints the live cells of v that fall inside dst.
func (p *CellPainter) Draw(dst *ebiten.Image, v sandbox.View) {
	w, h := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())
	lo, hi := v.VisibleCells(w, h)
	cw, ch := hi.X-lo.X+1, hi.Y-lo.Y+1
	if p.img == nil || p.raster.W != cw || p.raster.H != ch {
		p.raster.Resize(cw, ch)
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(cw, ch)
		p.buf = make([]byte, 4*cw*ch)
	}
	p.raster.MoveTo(lo.X, lo.Y)
	v.Raster(p.raster)
	fillBinaryRGBA(p.buf, p.raster.Cells(), p.on, color.RGBA{})
	p.img.WritePixels(p.buf)

	zoom := v.Zoom()
	sx, sy := v.CellToScreen(lo)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(w/2+sx-zoom/2, h/2+sy-zoom/2)
	dst.DrawImage(p.img, op)
}
