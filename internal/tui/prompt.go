package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type Prompter interface {
	Input(title, placeholder string) (string, error)
	Confirm(title string) (bool, error)
}

type huhPrompter struct{}

func (huhPrompter) Input(title, placeholder string) (string, error) {
	var result string
	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&result).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return result, nil
}

func (huhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	return ok, nil
}

var current Prompter = huhPrompter{}

// MockPrompts replaces the interactive prompts in tests.
type MockPrompts struct {
	InputFunc   func(title, placeholder string) (string, error)
	ConfirmFunc func(title string) (bool, error)
}

func (m *MockPrompts) Input(title, placeholder string) (string, error) {
	if m.InputFunc == nil {
		return "", fmt.Errorf("prompt: no input mocked for %q", title)
	}
	return m.InputFunc(title, placeholder)
}

func (m *MockPrompts) Confirm(title string) (bool, error) {
	if m.ConfirmFunc == nil {
		return false, nil
	}
	return m.ConfirmFunc(title)
}

func SetMock(m *MockPrompts) { current = m }

func ClearMock() { current = huhPrompter{} }

func Input(title, placeholder string) (string, error) {
	return current.Input(title, placeholder)
}

func Confirm(title string) (bool, error) {
	return current.Confirm(title)
}
