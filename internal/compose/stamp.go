package compose

import (
	"strconv"

	"codeberg.org/go-pdf/fpdf"
)

// Stamp is a page-sized drawable holding one rendered running number.
type Stamp struct {
	tpl  fpdf.Template
	size Size
}

// RenderStamp draws the decimal form of number onto a fresh canvas of the
// given size. at anchors the text baseline in points from the bottom-left
// corner of the canvas. The result is deterministic: identical arguments
// produce an identical drawable.
func (b *Builder) RenderStamp(number int, size Size, font string, fontSize float64, at Point) *Stamp {
	tpl := b.doc.CreateTemplateCustom(fpdf.PointType{}, fpdf.SizeType{Wd: size.W, Ht: size.H}, func(t *fpdf.Tpl) {
		t.SetFont(font, "", fontSize)
		t.Text(at.X, size.H-at.Y, strconv.Itoa(number))
	})
	return &Stamp{tpl: tpl, size: size}
}

// Size returns the stamp canvas dimensions.
func (s *Stamp) Size() Size {
	return s.size
}

func (s *Stamp) drawTo(b *Builder, at Point) error {
	b.doc.UseTemplateScaled(s.tpl, fpdf.PointType{X: at.X, Y: at.Y}, fpdf.SizeType{Wd: s.size.W, Ht: s.size.H})
	return nil
}
