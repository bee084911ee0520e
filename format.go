package gostmt

import (
	"sync"

	"github.com/golang/glog"
)

//go:generate mockgen -source=format.go -destination=mock_gostmt/mock_format.go

// FileFormat identifies a supported statement interchange format.
type FileFormat string

// FormatQFX covers OFX/QFX statement exports in either dialect.
const FormatQFX FileFormat = "qfx"

// ParsedTransaction is a tagged union of per format raw records. Exactly the
// variant matching Format is set.
type ParsedTransaction struct {
	Format FileFormat      `json:"format"`
	Qfx    *QfxTransaction `json:"qfx,omitempty"`
}

// FormatParser is the capability every statement format implements.
// IsSupported must be a pure sniff that never fails, Parse does the real
// work.
type FormatParser interface {
	Format() FileFormat
	IsSupported(filename, content string) bool
	Parse(content string) ([]ParsedTransaction, error)
}

// Registry holds format parsers and resolves content to one of them.
// Parsers are consulted in registration order.
type Registry struct {
	parsers  []FormatParser
	byFormat map[FileFormat]FormatParser
}

// NewRegistry returns a registry holding the given parsers, registered in
// order.
func NewRegistry(parsers ...FormatParser) *Registry {
	r := &Registry{byFormat: make(map[FileFormat]FormatParser, len(parsers))}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Register appends a parser. Registering two parsers for the same format is
// a programming error and panics.
func (r *Registry) Register(p FormatParser) {
	format := p.Format()
	if _, ok := r.byFormat[format]; ok {
		panic("gostmt: parser already registered for format " + string(format))
	}
	r.parsers = append(r.parsers, p)
	r.byFormat[format] = p
}

// Get returns the parser registered for the given format, or nil.
func (r *Registry) Get(format FileFormat) FormatParser {
	return r.byFormat[format]
}

// Formats returns the registered formats in registration order.
func (r *Registry) Formats() []FileFormat {
	formats := make([]FileFormat, 0, len(r.parsers))
	for _, p := range r.parsers {
		formats = append(formats, p.Format())
	}
	return formats
}

// Resolve picks the parser for the given content. Marker based detection
// runs first, then each parser's own IsSupported sniff in registration
// order. A FormatDetectionError means no parser claimed the content.
func (r *Registry) Resolve(filename, content string) (FormatParser, error) {
	if format, err := DetectFormat(filename, content); err == nil {
		if p := r.Get(format); p != nil {
			glog.V(3).Infof("resolved %q to format %s by detection", filename, format)
			return p, nil
		}
	}
	for _, p := range r.parsers {
		if p.IsSupported(filename, content) {
			glog.V(3).Infof("resolved %q to format %s by sniff", filename, p.Format())
			return p, nil
		}
	}
	return nil, &FormatDetectionError{Filename: filename}
}

var registrySingleton *Registry
var initRegistry sync.Once

// DefaultRegistry returns the singleton registry of built in formats.
func DefaultRegistry() *Registry {
	initRegistry.Do(func() {
		registrySingleton = NewRegistry(qfxParser{})
	})
	return registrySingleton
}
