package gostmt

import (
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

// dialect selects which front end parses an OFX/QFX document.
type dialect int

const (
	dialectSGML dialect = iota
	dialectXML
)

// ofxTag is the root element both OFX dialects share.
const ofxTag = "<OFX"

// DetectFormat classifies content into a statement format. Content markers
// are authoritative; the filename extension is consulted only when the
// content carries no marker. Unrecognizable input yields a
// FormatDetectionError.
func DetectFormat(filename, content string) (FileFormat, error) {
	if ofxTagIndex(content) != -1 {
		glog.V(3).Infof("detected qfx content marker in %q", filename)
		return FormatQFX, nil
	}
	if hasQfxExtension(filename) {
		glog.V(3).Infof("detected qfx filename extension on %q", filename)
		return FormatQFX, nil
	}
	return "", &FormatDetectionError{Filename: filename}
}

// ofxTagIndex returns the byte offset of the first case-insensitive <OFX tag
// in content, or -1 if none exists. A match requires the tag name to end at
// a ">", whitespace or end of input so that tags like <OFXTRASH> do not
// count.
func ofxTagIndex(content string) int {
	upper := strings.ToUpper(content)
	for from := 0; ; {
		i := strings.Index(upper[from:], ofxTag)
		if i == -1 {
			return -1
		}
		at := from + i
		after := at + len(ofxTag)
		if after >= len(upper) {
			return at
		}
		switch upper[after] {
		case '>', ' ', '\t', '\r', '\n':
			return at
		}
		from = after
	}
}

// hasQfxExtension returns true if the filename carries one of the extensions
// banks use for OFX exports.
func hasQfxExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".qfx", ".ofx":
		return true
	}
	return false
}

// detectDialect picks the front end for OFX content. A leading <?xml prolog
// selects the strict XML dialect, anything else is treated as SGML tag soup.
func detectDialect(content string) dialect {
	if strings.HasPrefix(strings.TrimSpace(content), "<?xml") {
		return dialectXML
	}
	return dialectSGML
}
