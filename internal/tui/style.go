package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xmazu/robotsx/robotstxt"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	CommentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true)

	InvalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(5).
			Align(lipgloss.Right)
)

func Header(text string) string {
	return HeaderStyle.Render(text)
}

func Success(text string) string {
	return SuccessStyle.Render(text)
}

func Warning(text string) string {
	return WarningStyle.Render(text)
}

func Error(text string) string {
	return ErrorStyle.Render(text)
}

func Muted(text string) string {
	return MutedStyle.Render(text)
}

func Key(text string) string {
	return KeyStyle.Render(text)
}

func Label(text string) string {
	return LabelStyle.Render(text)
}

// RenderLine colors one line by kind. Padding is written unstyled so the
// visible text matches the file.
func RenderLine(line *robotstxt.Line) string {
	var b strings.Builder
	b.WriteString(LineNumberStyle.Render(strconv.Itoa(line.LineNumber())))
	b.WriteString("  ")

	switch {
	case line.HasKeyPair():
		b.WriteString(KeyStyle.Render(line.Key()))
		b.WriteString(":")
		b.WriteString(line.PaddingBefore())
		if line.Value() != "" {
			b.WriteString(ValueStyle.Render(line.Value()))
		}
		b.WriteString(line.PaddingAfter())
		if line.HasComment() {
			b.WriteString(CommentStyle.Render(line.Comment()))
		}
	case line.Kind() == robotstxt.KindComment:
		indent := line.RawText()[:len(line.RawText())-len(line.Comment())]
		b.WriteString(indent)
		b.WriteString(CommentStyle.Render(line.Comment()))
	case strings.TrimSpace(line.RawText()) == "":
		b.WriteString(line.RawText())
	default:
		b.WriteString(InvalidStyle.Render(line.RawText()))
	}
	return b.String()
}
