// Package compose implements the page-compositing engine: it builds the
// output document page by page, overlaying imported template pages and
// rendered number stamps onto master templates.
package compose

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
)

// MergeTier records how far down the degradation ladder a composite went.
type MergeTier int

const (
	// MergeTranslated is the normal case: the overlay was drawn at the
	// requested offset.
	MergeTranslated MergeTier = iota
	// MergeUntranslated means the translated draw failed and the overlay was
	// drawn at the origin instead.
	MergeUntranslated
	// MergeDropped means both draws failed and the base page was emitted bare.
	MergeDropped
)

// String returns a human-readable name for the tier.
func (t MergeTier) String() string {
	switch t {
	case MergeTranslated:
		return "translated"
	case MergeUntranslated:
		return "untranslated"
	case MergeDropped:
		return "dropped"
	}
	return fmt.Sprintf("MergeTier(%d)", int(t))
}

// Drawable is anything that can be painted onto the page under construction.
// The offset passed to drawTo is the top-left corner in the writer's
// coordinate space; the Builder converts from bottom-left page coordinates.
type Drawable interface {
	Size() Size
	drawTo(b *Builder, at Point) error
}

// Metadata carries the document information entries written to the output.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Builder accumulates composed pages and serializes them once at the end.
// It is single-use: one Builder per run, not safe for concurrent use.
type Builder struct {
	doc   *fpdf.Fpdf
	pages int
}

// NewBuilder creates an empty output document with the given metadata.
func NewBuilder(meta Metadata) *Builder {
	doc := fpdf.New("P", "pt", "", "")
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(meta.Title, true)
	doc.SetAuthor(meta.Author, true)
	doc.SetSubject(meta.Subject, true)
	doc.SetKeywords(meta.Keywords, true)
	doc.SetCreator(meta.Creator, true)
	doc.SetProducer(meta.Producer, true)
	return &Builder{doc: doc}
}

// ComposedPage describes one page appended to the output document.
type ComposedPage struct {
	// Index is the zero-based position of the page in the output.
	Index int
	// Offset is the translation applied to the overlay. Zero when the
	// translated merge was not achieved.
	Offset Point
	// Tier records which rung of the degradation ladder produced the page.
	Tier MergeTier
}

// Compose appends a new page made of the base template with the overlay
// translated by at. The base is drawn from its pristine imported state on
// every call, so the same template can back any number of composed pages.
//
// Overlay failures never abort the run: a failed translated draw falls back
// to an untranslated draw, and if that fails too the base page is emitted
// bare. The tier reached is recorded on the returned ComposedPage. The error
// return is reserved for the base template itself being undrawable.
func (b *Builder) Compose(base *ImportedPage, overlay Drawable, at Point) (ComposedPage, error) {
	size := base.Size()
	b.doc.AddPageFormat("P", fpdf.SizeType{Wd: size.W, Ht: size.H})
	page := ComposedPage{Index: b.pages, Tier: MergeDropped}
	b.pages++

	if err := base.drawTo(b, b.topLeft(size, base, Point{})); err != nil {
		return page, fmt.Errorf("failed to draw base template: %w", err)
	}
	if overlay == nil {
		return page, nil
	}

	if err := overlay.drawTo(b, b.topLeft(size, overlay, at)); err == nil {
		page.Offset = at
		page.Tier = MergeTranslated
	} else if err := overlay.drawTo(b, b.topLeft(size, overlay, Point{})); err == nil {
		page.Tier = MergeUntranslated
	}
	return page, nil
}

// topLeft converts a bottom-left page offset into the writer's top-down
// coordinate space for a drawable of the given size.
func (b *Builder) topLeft(page Size, d Drawable, at Point) Point {
	return Point{X: at.X, Y: page.H - at.Y - d.Size().H}
}

// PageCount returns the number of pages composed so far.
func (b *Builder) PageCount() int {
	return b.pages
}

// Output serializes the document to w. It must be called at most once; the
// underlying writer is closed by serialization.
func (b *Builder) Output(w io.Writer) error {
	// The writer appends a blank page to an empty document on close, which
	// would break the 2N-page contract for empty content documents.
	if b.pages == 0 {
		return WriteEmptyDocument(w)
	}
	if b.doc.Err() {
		return fmt.Errorf("failed to build document: %w", b.doc.Error())
	}
	return b.doc.Output(w)
}

// WriteEmptyDocument emits a well-formed PDF whose page tree has zero pages.
func WriteEmptyDocument(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.6\n")
	off1 := buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	off2 := buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n")
	start := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 3\n%010d 65535 f \n%010d 00000 n \n%010d 00000 n \n", 0, off1, off2)
	fmt.Fprintf(&buf, "trailer\n<< /Size 3 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", start)
	_, err := w.Write(buf.Bytes())
	return err
}
