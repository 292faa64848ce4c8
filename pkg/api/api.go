// Package api exposes the double-sided merger: it composes a 2N-page
// print-ready document from a 2-page master PDF and an N-page content PDF.
package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/EdwardMesmine/VDPPDF-Merger/internal/assemble"
	"github.com/EdwardMesmine/VDPPDF-Merger/internal/compose"
	"github.com/EdwardMesmine/VDPPDF-Merger/internal/source"
)

// ErrInvalidMaster is returned when the master document has fewer than 2 pages.
var ErrInvalidMaster = source.ErrInvalidMaster

// ParseError reports an input document that does not parse as a PDF.
type ParseError = source.ParseError

// Merger is the main API for composing double-sided documents
type Merger struct {
	options Options
}

// New creates a new merger with default options
func New() *Merger {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new merger with the specified options
func NewWithOptions(options Options) *Merger {
	return &Merger{options: options}
}

// Merge reads the master and content documents and writes the composed
// double-sided document to output. Nothing is written on failure.
func (m *Merger) Merge(master, content io.Reader, output io.Writer) error {
	masterData, err := io.ReadAll(master)
	if err != nil {
		return fmt.Errorf("failed to read master document: %w", err)
	}
	contentData, err := io.ReadAll(content)
	if err != nil {
		return fmt.Errorf("failed to read content document: %w", err)
	}
	out, err := m.MergeBytes(masterData, contentData)
	if err != nil {
		return err
	}
	if _, err := output.Write(out); err != nil {
		return fmt.Errorf("failed to write output document: %w", err)
	}
	return nil
}

// MergeBytes composes the double-sided document from raw PDF bytes
func (m *Merger) MergeBytes(master, content []byte) ([]byte, error) {
	masterDoc, err := source.FromBytes(master, source.RoleMaster)
	if err != nil {
		return nil, err
	}
	contentDoc, err := source.FromBytes(content, source.RoleContent)
	if err != nil {
		return nil, err
	}
	return m.merge(masterDoc, contentDoc)
}

// MergeFiles composes the double-sided document from two input files and
// writes it to outputPath. The output file is created only after the whole
// document has been assembled, so a failed run leaves no partial artifact.
func (m *Merger) MergeFiles(masterPath, contentPath, outputPath string) error {
	masterDoc, err := source.Load(masterPath, source.RoleMaster)
	if err != nil {
		return err
	}
	contentDoc, err := source.Load(contentPath, source.RoleContent)
	if err != nil {
		return err
	}
	out, err := m.merge(masterDoc, contentDoc)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// merge runs the assembly pipeline and serializes the finished document
func (m *Merger) merge(masterDoc, contentDoc *source.Document) ([]byte, error) {
	builder := compose.NewBuilder(compose.Metadata{
		Title:    m.options.Title,
		Author:   m.options.Author,
		Subject:  m.options.Subject,
		Keywords: m.options.Keywords,
		Creator:  "VDPPDF", // Use fixed creator since it's not in Options
		Producer: "VDPPDF",
	})

	engine := assemble.NewEngine()
	engine.SetOptions(assemble.Options{
		FrontX:      m.options.FrontX,
		FrontY:      m.options.FrontY,
		StartNumber: m.options.StartNumber,
		NumberX:     m.options.NumberX,
		NumberY:     m.options.NumberY,
		FontFamily:  m.options.FontFamily,
		FontSize:    m.options.FontSize,
	})

	records, err := engine.Assemble(builder, masterDoc, contentDoc)
	if err != nil {
		return nil, err
	}

	if m.options.Debug {
		for _, rec := range records {
			if rec.Kind == assemble.Back {
				fmt.Printf("Composed %s page %d for content page %d, number %d (%s merge)\n",
					rec.Kind, rec.Merge.Index, rec.ContentPage, rec.Number, rec.Merge.Tier)
			} else {
				fmt.Printf("Composed %s page %d for content page %d at (%.2f, %.2f) (%s merge)\n",
					rec.Kind, rec.Merge.Index, rec.ContentPage, rec.Merge.Offset.X, rec.Merge.Offset.Y, rec.Merge.Tier)
			}
		}
	}

	var buf bytes.Buffer
	if err := builder.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize output document: %w", err)
	}
	return buf.Bytes(), nil
}

// WithOptions returns a new merger with the specified options
func (m *Merger) WithOptions(options Options) *Merger {
	return NewWithOptions(options)
}

// WithOption returns a new merger with the specified option set
func (m *Merger) WithOption(option Option) *Merger {
	newOptions := m.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// SetFrontPosition sets the explicit front overlay offset
func (m *Merger) SetFrontPosition(x, y float64) *Merger {
	newOptions := m.options
	newOptions.FrontX = x
	newOptions.FrontY = y
	return NewWithOptions(newOptions)
}

// SetStartNumber sets the first back-side number
func (m *Merger) SetStartNumber(n int) *Merger {
	newOptions := m.options
	newOptions.StartNumber = n
	return NewWithOptions(newOptions)
}

// SetNumberPosition sets where the number is drawn on the back side
func (m *Merger) SetNumberPosition(x, y float64) *Merger {
	newOptions := m.options
	newOptions.NumberX = x
	newOptions.NumberY = y
	return NewWithOptions(newOptions)
}

// SetFont sets the typeface for the number stamp
func (m *Merger) SetFont(family string, size float64) *Merger {
	newOptions := m.options
	newOptions.FontFamily = family
	newOptions.FontSize = size
	return NewWithOptions(newOptions)
}

// SetDebug sets the debug mode
func (m *Merger) SetDebug(debug bool) *Merger {
	newOptions := m.options
	newOptions.Debug = debug
	return NewWithOptions(newOptions)
}

// SetTitle sets the document title
func (m *Merger) SetTitle(title string) *Merger {
	newOptions := m.options
	newOptions.Title = title
	return NewWithOptions(newOptions)
}

// SetAuthor sets the document author
func (m *Merger) SetAuthor(author string) *Merger {
	newOptions := m.options
	newOptions.Author = author
	return NewWithOptions(newOptions)
}
