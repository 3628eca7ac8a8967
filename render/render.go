// Package render draws board positions as SVG documents or raster
// images.
package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/dferris/sanboard/board"
)

// rasterScale renders at higher resolution before downscaling for
// quality.
const rasterScale = 3

// Style controls the board's appearance.
type Style struct {
	Square    int    // pixel size of one square
	Light     string // light square fill
	Dark      string // dark square fill
	WhiteFill string // white piece disc fill
	BlackFill string // black piece disc fill
	Glyphs    bool   // label discs with notation letters (SVG only)
}

// DefaultStyle returns the standard wooden board colors.
func DefaultStyle() Style {
	return Style{
		Square:    64,
		Light:     "#f0d9b5",
		Dark:      "#b58863",
		WhiteFill: "#ffffff",
		BlackFill: "#1f1f1f",
		Glyphs:    true,
	}
}

// Renderer draws positions in a fixed style.
type Renderer struct {
	style Style
}

// New returns a renderer with the given style.
func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// WriteSVG writes the position as an SVG document, White's side at the
// bottom. Pieces are drawn as filled discs, labeled with their notation
// letter when the style enables glyphs.
func (r *Renderer) WriteSVG(w io.Writer, pos *board.Position) {
	sq := r.style.Square
	size := sq * 8

	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, size, size)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			fill := r.style.Light
			if (rank+file)%2 == 0 {
				fill = r.style.Dark
			}
			x, y := r.origin(file, rank)
			canvas.Rect(x, y, sq, sq, "fill:"+fill)
		}
	}

	for s := board.A1; s <= board.H8; s++ {
		p := pos.Get(s)
		if p == nil {
			continue
		}
		fill, label := r.style.WhiteFill, r.style.BlackFill
		if p.Color() == board.Black {
			fill, label = r.style.BlackFill, r.style.WhiteFill
		}
		x, y := r.origin(s.File(), s.Rank())
		cx, cy := x+sq/2, y+sq/2
		canvas.Circle(cx, cy, sq*2/5,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", fill, label))
		if r.style.Glyphs {
			canvas.Text(cx, cy, glyph(p),
				fmt.Sprintf("fill:%s;font-size:%dpx;font-family:sans-serif;"+
					"text-anchor:middle;dominant-baseline:central", label, sq/2))
		}
	}

	canvas.End()
}

// Image rasterizes the position. The SVG form is rendered at higher
// resolution with anti-aliasing, then downscaled to the styled size.
// Text is not rasterized, so the discs stay unlabeled.
func (r *Renderer) Image(pos *board.Position) (image.Image, error) {
	size := r.style.Square * 8
	renderSize := size * rasterScale

	plain := *r
	plain.style.Glyphs = false
	var buf bytes.Buffer
	plain.WriteSVG(&buf, pos)

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), rgba, rgba.Bounds(), xdraw.Over, nil)
	return out, nil
}

// origin returns the top-left pixel of a square, rank 8 at the top.
func (r *Renderer) origin(file, rank int) (x, y int) {
	return file * r.style.Square, (7 - rank) * r.style.Square
}

// glyph returns the notation letter drawn on a piece disc, lowercase
// for Black.
func glyph(p board.Piece) string {
	s := string(p.Kind().Letter())
	if p.Color() == board.Black {
		return strings.ToLower(s)
	}
	return s
}
