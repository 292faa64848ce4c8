// Package assemble orchestrates the double-sided composition pipeline: for
// every content page it builds a front composite and a numbered back page,
// appended to the output in strict front-then-back order.
package assemble

import (
	"fmt"

	"github.com/EdwardMesmine/VDPPDF-Merger/internal/compose"
	"github.com/EdwardMesmine/VDPPDF-Merger/internal/source"
)

// Options represents options for the assembly engine
type Options struct {
	// Front overlay placement; a negative coordinate selects auto-centering
	// on that axis.
	FrontX float64
	FrontY float64

	// Back-side numbering
	StartNumber int
	NumberX     float64
	NumberY     float64

	// Typeface used for the number stamp
	FontFamily string
	FontSize   float64
}

// PageKind distinguishes the two sides of a sheet.
type PageKind int

const (
	// Front is a content page composited onto the front template.
	Front PageKind = iota
	// Back is the back template with the running number stamped on.
	Back
)

// String returns a human-readable name for the page kind.
func (k PageKind) String() string {
	if k == Front {
		return "front"
	}
	return "back"
}

// PageRecord describes one page appended to the output document.
type PageRecord struct {
	Kind PageKind
	// ContentPage is the 1-based index of the content page this sheet
	// belongs to.
	ContentPage int
	// Number is the running number stamped on a back page; zero for fronts.
	Number int
	// Merge describes the composite that produced the page.
	Merge compose.ComposedPage
}

// Engine handles the assembly process
type Engine struct {
	options Options
}

// NewEngine creates a new assembly engine with default options
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			FrontX:      compose.Auto,
			FrontY:      compose.Auto,
			StartNumber: 1,
			NumberX:     50,
			NumberY:     50,
			FontFamily:  "Helvetica",
			FontSize:    20,
		},
	}
}

// SetOptions sets the options for the assembly engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Assemble composes the whole output document into b: for content pages
// p_1..p_N, page 2i-1 of the output is p_i overlaid onto the front template
// and page 2i is the back template stamped with StartNumber+i-1. It fails
// with source.ErrInvalidMaster before composing anything when the master has
// fewer than two pages. An empty content document yields an empty output and
// no error.
func (e *Engine) Assemble(b *compose.Builder, master, content *source.Document) ([]PageRecord, error) {
	if master.PageCount() < 2 {
		return nil, source.ErrInvalidMaster
	}

	masterPages := b.NewImporter(master.Data())
	front := masterPages.Page(1, master.PageSize(1))
	back := masterPages.Page(2, master.PageSize(2))
	contentPages := b.NewImporter(content.Data())

	records := make([]PageRecord, 0, 2*content.PageCount())
	numberAt := compose.Point{X: e.options.NumberX, Y: e.options.NumberY}
	number := e.options.StartNumber

	for i := 1; i <= content.PageCount(); i++ {
		page := contentPages.Page(i, content.PageSize(i))
		at := compose.ResolvePlacement(front.Size(), page.Size(), e.options.FrontX, e.options.FrontY)
		merged, err := b.Compose(front, page, at)
		if err != nil {
			return nil, fmt.Errorf("failed to compose front side for content page %d: %w", i, err)
		}
		records = append(records, PageRecord{Kind: Front, ContentPage: i, Merge: merged})

		stamp := b.RenderStamp(number, back.Size(), e.options.FontFamily, e.options.FontSize, numberAt)
		// The stamp canvas already matches the back template's size and the
		// number position is fixed inside it, so the composite offset is
		// always zero.
		merged, err = b.Compose(back, stamp, compose.Point{})
		if err != nil {
			return nil, fmt.Errorf("failed to compose back side for content page %d: %w", i, err)
		}
		records = append(records, PageRecord{Kind: Back, ContentPage: i, Number: number, Merge: merged})
		number++
	}

	return records, nil
}
