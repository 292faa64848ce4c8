package compose

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
)

// Importer imports pages of one source PDF into the output document as
// reusable form XObjects. Use one Importer per source document.
type Importer struct {
	builder *Builder
	imp     *gofpdi.Importer
	rs      io.ReadSeeker
}

// NewImporter creates an importer for the source document given as raw bytes.
func (b *Builder) NewImporter(data []byte) *Importer {
	return &Importer{
		builder: b,
		imp:     gofpdi.NewImporter(),
		rs:      bytes.NewReader(data),
	}
}

// Page returns a handle for page pageNo (1-based) with the given media box
// size. The page is imported on first draw and the resulting template is
// reused for every later draw, so templates stay pristine across composites.
func (imp *Importer) Page(pageNo int, size Size) *ImportedPage {
	return &ImportedPage{imp: imp, pageNo: pageNo, size: size}
}

// ImportedPage is a page borrowed read-only from a source document.
type ImportedPage struct {
	imp      *Importer
	pageNo   int
	size     Size
	tpl      int
	imported bool
}

// Size returns the page's media box dimensions.
func (p *ImportedPage) Size() Size {
	return p.size
}

// drawTo paints the imported page onto the current output page with its
// top-left corner at the given point. The underlying importer reports parse
// failures by panicking; those are contained here so a bad page degrades
// that composite only instead of killing the run.
func (p *ImportedPage) drawTo(b *Builder, at Point) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to draw imported page %d: %v", p.pageNo, r)
		}
	}()
	if !p.imported {
		p.tpl = p.imp.imp.ImportPageFromStream(b.doc, &p.imp.rs, p.pageNo, "/MediaBox")
		p.imported = true
	}
	p.imp.imp.UseImportedTemplate(b.doc, p.tpl, at.X, at.Y, p.size.W, p.size.H)
	return nil
}
