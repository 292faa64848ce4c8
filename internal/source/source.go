// Package source loads and inspects the input documents. Each input is
// parsed once up front; the raw bytes are kept for page import and the page
// dimensions are captured for placement computation.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/EdwardMesmine/VDPPDF-Merger/internal/compose"
)

// Role identifies which input a document was loaded as.
type Role string

const (
	// RoleMaster is the 2-page template document.
	RoleMaster Role = "master"
	// RoleContent is the N-page content document.
	RoleContent Role = "content"
)

// ErrInvalidMaster is returned when the master document has fewer than the
// two pages needed for the front and back templates.
var ErrInvalidMaster = errors.New("master document must contain at least 2 pages")

// ParseError reports an input that does not parse as a paginated document.
type ParseError struct {
	Role Role
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s document: %v", e.Role, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed, read-only input document.
type Document struct {
	role Role
	data []byte
	dims []compose.Size
}

// FromBytes parses data as a paginated document. A document that does not
// parse yields a *ParseError wrapping the underlying diagnostic.
func FromBytes(data []byte, role Role) (*Document, error) {
	dims, err := api.PageDims(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, &ParseError{Role: role, Err: err}
	}
	sizes := make([]compose.Size, len(dims))
	for i, d := range dims {
		sizes[i] = compose.Size{W: d.Width, H: d.Height}
	}
	return &Document{role: role, data: data, dims: sizes}, nil
}

// Load reads and parses the document at path.
func Load(path string, role Role) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s document: %w", role, err)
	}
	return FromBytes(data, role)
}

// Role returns which input the document was loaded as.
func (d *Document) Role() Role {
	return d.role
}

// Data returns the raw document bytes for page import.
func (d *Document) Data() []byte {
	return d.data
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.dims)
}

// PageSize returns the media box dimensions of page pageNo (1-based).
func (d *Document) PageSize(pageNo int) compose.Size {
	return d.dims[pageNo-1]
}
