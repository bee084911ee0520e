package gostmt

import (
	"errors"
	"fmt"
)

var (
	errNoRootElement  = errors.New("OFX tag not found")
	errEmptyDocument  = errors.New("document contains no elements")
	errOrphanData     = errors.New("character data outside any open tag")
	errOrphanClose    = errors.New("closing tag matches no open tag")
	errAfterRoot      = errors.New("content after the root element")
	errDateUnparsable = errors.New("error - date string can not be parsed")
)

// ConfigError reports parser misuse detected before any parsing work starts,
// such as missing content or an unregistered explicit format.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "error - invalid parser configuration: " + e.Reason
}

// FormatDetectionError reports content that matched no known statement
// format and carried no explicit format override.
type FormatDetectionError struct {
	Filename string
}

func (e *FormatDetectionError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("error - unrecognized statement format for %q", e.Filename)
	}
	return "error - unrecognized statement format"
}

// SyntaxError reports malformed markup in either dialect. Fragment holds the
// offending token or an excerpt of the surrounding text, Offset its byte
// position within the full content.
type SyntaxError struct {
	Fragment string
	Offset   int64
	Err      error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil && e.Fragment != "" {
		return fmt.Sprintf("error - malformed markup at byte %d near %q: %s", e.Offset, e.Fragment, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("error - malformed markup at byte %d: %s", e.Offset, e.Err)
	}
	return fmt.Sprintf("error - malformed markup at byte %d near %q", e.Offset, e.Fragment)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// DateParseError reports an unrecognized date value on the record at Index.
type DateParseError struct {
	Field string
	Value string
	Index int
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("error - record %d: %s value %q can not be parsed as a date", e.Index, e.Field, e.Value)
}

// AmountParseError reports a non-numeric amount value on the record at Index.
type AmountParseError struct {
	Field string
	Value string
	Index int
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("error - record %d: %s value %q is not a valid decimal", e.Index, e.Field, e.Value)
}

// MissingMandatoryFieldError reports a transaction record at Index that
// lacks a field every record must carry.
type MissingMandatoryFieldError struct {
	Field string
	Index int
}

func (e *MissingMandatoryFieldError) Error() string {
	return fmt.Sprintf("error - record %d: mandatory field %s is missing", e.Index, e.Field)
}

// ConversionError reports a caller supplied conversion rejecting the record
// at Index. The whole ParseInto call is aborted and no converted records are
// returned.
type ConversionError struct {
	Index int
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("error - record %d: conversion failed: %s", e.Index, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
