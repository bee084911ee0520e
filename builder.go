package gostmt

import (
	"fmt"
)

// ParserBuilder accumulates parse configuration through chained setters and
// hands it to a terminal parse call. The zero builder is not usable without
// content; filename and format are optional hints.
type ParserBuilder struct {
	content    string
	contentSet bool
	filename   string
	format     FileFormat
	formatSet  bool
	registry   *Registry
}

// NewParserBuilder returns an empty builder backed by the default format
// registry.
func NewParserBuilder() *ParserBuilder {
	return &ParserBuilder{}
}

// Content sets the statement text to parse. Required.
func (b *ParserBuilder) Content(content string) *ParserBuilder {
	b.content = content
	b.contentSet = true
	return b
}

// Filename records the source filename. It is only a detection hint, never
// read from disk.
func (b *ParserBuilder) Filename(filename string) *ParserBuilder {
	b.filename = filename
	return b
}

// Format forces a specific format, bypassing detection entirely.
func (b *ParserBuilder) Format(format FileFormat) *ParserBuilder {
	b.format = format
	b.formatSet = true
	return b
}

// Registry overrides the format registry consulted by the terminal parse
// calls. Useful for registering additional formats without touching the
// process wide default.
func (b *ParserBuilder) Registry(r *Registry) *ParserBuilder {
	b.registry = r
	return b
}

// Parse resolves a format parser for the configured input and returns the
// raw records in document order. Parsing is a pure function of the
// configured inputs, so a builder may be reused and parsed concurrently.
func (b *ParserBuilder) Parse() ([]ParsedTransaction, error) {
	if !b.contentSet {
		return nil, &ConfigError{Reason: "content is required"}
	}
	parser, err := b.resolve()
	if err != nil {
		return nil, err
	}
	return parser.Parse(b.content)
}

// ParseTransactions runs Parse and converts every record to the default
// Transaction shape.
func (b *ParserBuilder) ParseTransactions() ([]Transaction, error) {
	return ParseInto(b, TransactionFromParsed)
}

// resolve picks the parser: an explicit format wins, otherwise detection
// and per parser sniffing decide.
func (b *ParserBuilder) resolve() (FormatParser, error) {
	registry := b.registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	if b.formatSet {
		if p := registry.Get(b.format); p != nil {
			return p, nil
		}
		return nil, &ConfigError{Reason: fmt.Sprintf("no parser registered for format %q", b.format)}
	}
	return registry.Resolve(b.filename, b.content)
}

// ParseInto runs the builder's Parse and converts each raw record with conv.
// The first failing conversion aborts the whole call with a ConversionError,
// so callers never see a partially converted set.
func ParseInto[T any](b *ParserBuilder, conv func(ParsedTransaction) (T, error)) ([]T, error) {
	parsed, err := b.Parse()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(parsed))
	for i, record := range parsed {
		v, err := conv(record)
		if err != nil {
			return nil, &ConversionError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
