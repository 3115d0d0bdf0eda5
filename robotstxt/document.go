package robotstxt

import (
	"strings"
)

type LineEnding string

const (
	LF   LineEnding = "\n"
	CRLF LineEnding = "\r\n"
)

// Document is the ordered list of lines of a robots.txt file. Its order is
// the output order.
type Document []*Line

// Parse splits content on line feeds and parses every line. A single
// trailing newline does not produce an empty final line, and a carriage
// return directly before a line feed is treated as part of the terminator.
// Parse never fails: anything it does not recognize is kept verbatim.
func Parse(content string) Document {
	segments := strings.Split(content, "\n")
	terminated := len(segments) - 1
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	doc := make(Document, 0, len(segments))
	for i, seg := range segments {
		if i < terminated {
			seg = strings.TrimSuffix(seg, "\r")
		}
		doc = append(doc, NewLine(seg, i).Parse())
	}
	return doc
}

type serializeOptions struct {
	eol LineEnding
}

type Option func(*serializeOptions)

// WithLineEnding sets the terminator written after every line. The default
// is LF.
func WithLineEnding(eol LineEnding) Option {
	return func(o *serializeOptions) {
		if eol != "" {
			o.eol = eol
		}
	}
}

func Serialize(doc Document, opts ...Option) string {
	o := serializeOptions{eol: LF}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	for _, line := range doc {
		b.WriteString(line.Serialize(o.eol))
	}
	return b.String()
}

// Append adds a directive line built from key and value, written as
// "key: value".
func (d *Document) Append(key, value string) *Line {
	return d.AppendRaw(key, value, "")
}

// AppendRaw is Append with an explicit raw text for the new line. An empty
// raw is synthesized from key and value.
func (d *Document) AppendRaw(key, value, raw string) *Line {
	if raw == "" {
		raw = key + ": " + value
	}
	next := &Line{
		raw:    raw,
		index:  len(*d),
		kind:   KindDirective,
		key:    key,
		value:  value,
		before: " ",
	}
	*d = append(*d, next)
	return next
}

// Lookup returns the directive lines whose key matches key, ignoring case
// and surrounding whitespace.
func (d Document) Lookup(key string) []*Line {
	key = strings.TrimSpace(key)
	var lines []*Line
	for _, line := range d {
		if line.HasKeyPair() && strings.EqualFold(strings.TrimSpace(line.key), key) {
			lines = append(lines, line)
		}
	}
	return lines
}

func (d Document) Values(key string) []string {
	lines := d.Lookup(key)
	values := make([]string, 0, len(lines))
	for _, line := range lines {
		values = append(values, line.value)
	}
	return values
}

func (d Document) Directives() []*Line {
	var lines []*Line
	for _, line := range d {
		if line.HasKeyPair() {
			lines = append(lines, line)
		}
	}
	return lines
}

func (d Document) At(lineNumber int) (*Line, bool) {
	for _, line := range d {
		if line.LineNumber() == lineNumber {
			return line, true
		}
	}
	return nil, false
}

// Remove deletes line from the document. The remaining lines keep their
// line numbers.
func (d *Document) Remove(line *Line) bool {
	for i, l := range *d {
		if l == line {
			*d = append((*d)[:i], (*d)[i+1:]...)
			return true
		}
	}
	return false
}

// DetectLineEnding returns CRLF when every terminated line of content ends
// in "\r\n", and LF otherwise.
func DetectLineEnding(content string) LineEnding {
	lf := strings.Count(content, "\n")
	if lf == 0 {
		return LF
	}
	if strings.Count(content, "\r\n") == lf {
		return CRLF
	}
	return LF
}
