package vdppdf

import (
	"github.com/EdwardMesmine/VDPPDF-Merger/pkg/api"
)

type Merger = api.Merger
type Options = api.Options
type Option = api.Option
type ParseError = api.ParseError

func New() *Merger                           { return api.New() }
func NewWithOptions(options Options) *Merger { return api.NewWithOptions(options) }
func DefaultOptions() Options                { return api.DefaultOptions() }

var (
	ErrInvalidMaster = api.ErrInvalidMaster

	WithFrontPosition  = api.WithFrontPosition
	WithAutoCenter     = api.WithAutoCenter
	WithStartNumber    = api.WithStartNumber
	WithNumberPosition = api.WithNumberPosition
	WithFont           = api.WithFont
	WithDebug          = api.WithDebug
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject
	WithKeywords       = api.WithKeywords
)

const (
	AutoCenter = api.AutoCenter
)
