package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/frcopy/frcopy/internal/errors"
	"golang.org/x/term"
)

// Prompter asks the operator questions. When not interactive every prompt
// answers with its default without touching the terminal.
type Prompter interface {
	Interactive() bool
	SetInteractive(interactive bool)

	// Ask reads free text. The non-interactive answer is "".
	Ask(title string) (string, error)
	// Choose reads free text with suggested answers, defaulting to def.
	Choose(title string, suggestions []string, def string) (string, error)
	// Confirm asks a yes/no question, defaulting to def.
	Confirm(title string, def bool) (bool, error)
}

// WithInteractive runs fn with p switched to the given mode and restores the
// previous mode afterwards, whatever fn returns.
func WithInteractive(p Prompter, interactive bool, fn func() error) error {
	prev := p.Interactive()
	p.SetInteractive(interactive)
	defer p.SetInteractive(prev)
	return fn()
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// HuhPrompter asks questions with Huh forms.
type HuhPrompter struct {
	interactive bool
	accessible  bool
}

// NewHuhPrompter creates a prompter. Accessible mode renders plain prompts,
// which keeps forms usable when stdin is not a full terminal.
func NewHuhPrompter(interactive bool) *HuhPrompter {
	return &HuhPrompter{
		interactive: interactive,
		accessible:  !StdinIsTerminal(),
	}
}

// Interactive reports whether prompts reach the operator.
func (p *HuhPrompter) Interactive() bool {
	return p.interactive
}

// SetInteractive switches prompting on or off.
func (p *HuhPrompter) SetInteractive(interactive bool) {
	p.interactive = interactive
}

// Ask reads free text.
func (p *HuhPrompter) Ask(title string) (string, error) {
	if !p.interactive {
		return "", nil
	}

	var answer string
	err := p.run(huh.NewInput().
		Title(title).
		Value(&answer))
	return strings.TrimSpace(answer), err
}

// Choose reads free text with suggestions, prefilled with def.
func (p *HuhPrompter) Choose(title string, suggestions []string, def string) (string, error) {
	if !p.interactive {
		return def, nil
	}

	answer := def
	err := p.run(huh.NewInput().
		Title(title).
		Description("One of: "+strings.Join(suggestions, ", ")+" (or any other name)").
		Suggestions(suggestions).
		Value(&answer))

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = def
	}
	return answer, err
}

// Confirm asks a yes/no question.
func (p *HuhPrompter) Confirm(title string, def bool) (bool, error) {
	if !p.interactive {
		return def, nil
	}

	answer := def
	err := p.run(huh.NewConfirm().
		Title(title).
		Value(&answer))
	return answer, err
}

func (p *HuhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(p.accessible)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get user input",
			"Check terminal compatibility or use --no-interaction")
	}
	return nil
}
