package api

import "github.com/EdwardMesmine/VDPPDF-Merger/internal/compose"

// AutoCenter is the sentinel coordinate selecting auto-centered placement of
// content pages on the front template. Any negative coordinate behaves the
// same way.
const AutoCenter = compose.Auto

// Options represents configuration options for the double-sided merger
type Options struct {
	// Front overlay placement, in points from the bottom-left corner of the
	// front template. Negative values select auto-centering.
	FrontX float64
	FrontY float64

	// Back-side numbering
	StartNumber int
	NumberX     float64
	NumberY     float64

	// Typeface for the number stamp
	FontFamily string
	FontSize   float64

	// Debug enables verbose logging to stdout
	Debug bool

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// Auto-center content pages on the front template
		FrontX: AutoCenter,
		FrontY: AutoCenter,

		// Number back sides 1, 2, 3, ... at (50, 50)
		StartNumber: 1,
		NumberX:     50,
		NumberY:     50,

		// Fixed stamp typeface
		FontFamily: "Helvetica",
		FontSize:   20,

		// Default debug mode
		Debug: false,

		// Default document metadata
		Title:    "",
		Author:   "",
		Subject:  "",
		Keywords: "",
	}
}

// WithFrontPosition sets the explicit front overlay offset
func WithFrontPosition(x, y float64) Option {
	return func(o *Options) {
		o.FrontX = x
		o.FrontY = y
	}
}

// WithAutoCenter selects auto-centered front overlay placement
func WithAutoCenter() Option {
	return WithFrontPosition(AutoCenter, AutoCenter)
}

// WithStartNumber sets the first back-side number
func WithStartNumber(n int) Option {
	return func(o *Options) {
		o.StartNumber = n
	}
}

// WithNumberPosition sets where the number is drawn on the back side
func WithNumberPosition(x, y float64) Option {
	return func(o *Options) {
		o.NumberX = x
		o.NumberY = y
	}
}

// WithFont sets the typeface for the number stamp
func WithFont(family string, size float64) Option {
	return func(o *Options) {
		o.FontFamily = family
		o.FontSize = size
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}
