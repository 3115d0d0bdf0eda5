package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xmazu/robotsx/internal/audit"
	"github.com/xmazu/robotsx/internal/discover"
	"github.com/xmazu/robotsx/robotstxt"
)

var (
	ErrNoMatch      = errors.New("no matching directive")
	ErrAmbiguous    = errors.New("key matches more than one line")
	ErrNotDirective = errors.New("line is not a directive")
	ErrEmptyKey     = errors.New("key is required")
	ErrInvalidValue = errors.New("value must not contain '#' or line breaks")
)

// Target selects directive lines by key, by line number, or both.
type Target struct {
	Key  string
	Line int
	All  bool
}

type Change struct {
	Line int    `json:"line" yaml:"line"`
	Key  string `json:"key" yaml:"key"`
	Old  string `json:"old,omitempty" yaml:"old,omitempty"`
	New  string `json:"new,omitempty" yaml:"new,omitempty"`
}

type LineInfo struct {
	Line          int    `json:"line" yaml:"line"`
	Kind          string `json:"kind" yaml:"kind"`
	Key           string `json:"key,omitempty" yaml:"key,omitempty"`
	Value         string `json:"value,omitempty" yaml:"value,omitempty"`
	Comment       string `json:"comment,omitempty" yaml:"comment,omitempty"`
	PaddingBefore string `json:"padding_before,omitempty" yaml:"padding_before,omitempty"`
	PaddingAfter  string `json:"padding_after,omitempty" yaml:"padding_after,omitempty"`
	Raw           string `json:"raw" yaml:"raw"`
}

func Describe(doc robotstxt.Document) []LineInfo {
	out := make([]LineInfo, 0, len(doc))
	for _, l := range doc {
		info := LineInfo{
			Line:    l.LineNumber(),
			Kind:    l.Kind().String(),
			Comment: l.Comment(),
			Raw:     l.RawText(),
		}
		if l.HasKeyPair() {
			info.Key = l.Key()
			info.Value = l.Value()
			info.PaddingBefore = l.PaddingBefore()
			info.PaddingAfter = l.PaddingAfter()
		}
		out = append(out, info)
	}
	return out
}

func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func Select(doc robotstxt.Document, t Target) ([]*robotstxt.Line, error) {
	if t.Line > 0 {
		line, ok := doc.At(t.Line)
		if !ok {
			return nil, fmt.Errorf("line %d: %w", t.Line, ErrNoMatch)
		}
		if !line.HasKeyPair() {
			return nil, fmt.Errorf("line %d: %w", t.Line, ErrNotDirective)
		}
		if t.Key != "" && !sameKey(line.Key(), t.Key) {
			return nil, fmt.Errorf("line %d has key %q, not %q: %w", t.Line, strings.TrimSpace(line.Key()), t.Key, ErrNoMatch)
		}
		return []*robotstxt.Line{line}, nil
	}

	if strings.TrimSpace(t.Key) == "" {
		return nil, ErrEmptyKey
	}
	lines := doc.Lookup(t.Key)
	if len(lines) == 0 {
		return nil, fmt.Errorf("key %q: %w", t.Key, ErrNoMatch)
	}
	if len(lines) > 1 && !t.All {
		numbers := make([]string, 0, len(lines))
		for _, l := range lines {
			numbers = append(numbers, fmt.Sprint(l.LineNumber()))
		}
		return nil, fmt.Errorf("key %q on lines %s: %w", t.Key, strings.Join(numbers, ", "), ErrAmbiguous)
	}
	return lines, nil
}

// checkValue rejects values that would not read back as the same value.
func checkValue(value string) error {
	if strings.ContainsAny(value, "#\r\n") {
		return ErrInvalidValue
	}
	return nil
}

func Set(doc robotstxt.Document, t Target, value string) ([]Change, error) {
	value = strings.TrimSpace(value)
	if err := checkValue(value); err != nil {
		return nil, err
	}
	lines, err := Select(doc, t)
	if err != nil {
		return nil, err
	}
	changes := make([]Change, 0, len(lines))
	for _, l := range lines {
		changes = append(changes, Change{Line: l.LineNumber(), Key: strings.TrimSpace(l.Key()), Old: l.Value(), New: value})
		l.SetValue(value)
	}
	return changes, nil
}

func Remove(doc *robotstxt.Document, t Target) ([]Change, error) {
	lines, err := Select(*doc, t)
	if err != nil {
		return nil, err
	}
	changes := make([]Change, 0, len(lines))
	for _, l := range lines {
		changes = append(changes, Change{Line: l.LineNumber(), Key: strings.TrimSpace(l.Key()), Old: l.Value()})
		doc.Remove(l)
	}
	return changes, nil
}

func Append(doc *robotstxt.Document, key, value string) (Change, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Change{}, ErrEmptyKey
	}
	if strings.ContainsAny(key, ":#\r\n") {
		return Change{}, fmt.Errorf("key %q must not contain ':', '#' or line breaks", key)
	}
	if err := checkValue(value); err != nil {
		return Change{}, err
	}
	l := doc.Append(key, strings.TrimSpace(value))
	return Change{Line: l.LineNumber(), Key: key, New: l.Value()}, nil
}

// Journal records changes in the audit log of workdir.
func Journal(workdir string, op audit.Op, path string, changes []Change, opts ...audit.Option) error {
	for _, c := range changes {
		all := append([]audit.Option{
			audit.WithFile(path),
			audit.WithKey(c.Key),
			audit.WithLine(c.Line),
			audit.WithChange(c.Old, c.New),
		}, opts...)
		if err := audit.Log(workdir, op, all...); err != nil {
			return err
		}
	}
	return nil
}

// JournalRoot is the directory whose audit log records edits made under
// dir: the enclosing project root, or dir itself.
func JournalRoot(dir string) string {
	if dir == "" {
		dir = "."
	}
	root, err := discover.FindRoot(dir)
	if err != nil {
		return dir
	}
	return root
}
