package robotstxt

import (
	"strings"
	"unicode"
)

type Kind int

const (
	KindPassThrough Kind = iota
	KindComment
	KindDirective
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindDirective:
		return "directive"
	default:
		return "passthrough"
	}
}

// Line is one physical line of a robots.txt document. Only the key and
// value are mutable; everything else is derived from the raw text.
type Line struct {
	raw     string
	index   int
	kind    Kind
	key     string
	value   string
	comment string
	before  string
	after   string
}

func NewLine(raw string, index int) *Line {
	return &Line{raw: raw, index: index}
}

func (l *Line) RawText() string { return l.raw }

func (l *Line) Index() int { return l.index }

// LineNumber is the one-based position the line had when it was parsed or
// appended.
func (l *Line) LineNumber() int { return l.index + 1 }

func (l *Line) Kind() Kind { return l.kind }

func (l *Line) Key() string { return l.key }

func (l *Line) SetKey(key string) { l.key = key }

func (l *Line) Value() string { return l.value }

func (l *Line) SetValue(value string) { l.value = value }

func (l *Line) Comment() string { return l.comment }

func (l *Line) PaddingBefore() string { return l.before }

func (l *Line) PaddingAfter() string { return l.after }

func (l *Line) HasComment() bool {
	return l.comment != ""
}

// HasKeyPair reports whether the line is a directive with a non-empty key.
// A directive with an empty key (":x") is written back verbatim.
func (l *Line) HasKeyPair() bool {
	return l.kind == KindDirective && l.key != ""
}

// Parse decomposes the raw text into key, value, comment and padding and
// returns the receiver.
func (l *Line) Parse() *Line {
	l.kind = KindPassThrough
	l.key, l.value, l.comment, l.before, l.after = "", "", "", "", ""

	if isCommentLine(l.raw) {
		l.kind = KindComment
		l.comment = l.raw[strings.IndexByte(l.raw, '#'):]
		return l
	}

	key, rest, ok := strings.Cut(l.raw, ":")
	if !ok {
		return l
	}

	if hash := strings.IndexByte(rest, '#'); hash >= 0 {
		l.comment = rest[hash:]
		rest = rest[:hash]
	}

	value := strings.TrimLeftFunc(rest, unicode.IsSpace)
	l.before = rest[:len(rest)-len(value)]
	trimmed := strings.TrimRightFunc(value, unicode.IsSpace)
	l.after = value[len(trimmed):]

	l.kind = KindDirective
	l.key = key
	l.value = trimmed
	return l
}

// Text returns the serialized line without a terminator.
func (l *Line) Text() string {
	if !l.HasKeyPair() {
		return l.raw
	}
	var b strings.Builder
	b.Grow(len(l.key) + len(l.before) + len(l.value) + len(l.after) + len(l.comment) + 1)
	b.WriteString(l.key)
	b.WriteByte(':')
	b.WriteString(l.before)
	b.WriteString(l.value)
	b.WriteString(l.after)
	b.WriteString(l.comment)
	return b.String()
}

func (l *Line) Serialize(eol LineEnding) string {
	return l.Text() + string(eol)
}

func isCommentLine(s string) bool {
	rest := strings.TrimLeftFunc(s, unicode.IsSpace)
	return strings.HasPrefix(rest, "#")
}
