// Package testing provides a scripted Prompter for tests.
package testing

import (
	"sync"

	"github.com/frcopy/frcopy/internal/ui"
)

// ScriptedPrompter answers prompts from per-title answers. Unscripted prompts
// and all prompts while non-interactive get the same answers HuhPrompter gives
// without a terminal.
type ScriptedPrompter struct {
	mu          sync.Mutex
	interactive bool
	answers     map[string]string
	confirms    map[string]bool
	errs        map[string]error
	asked       []string
}

var _ ui.Prompter = (*ScriptedPrompter)(nil)

// NewScriptedPrompter creates a prompter in the given mode.
func NewScriptedPrompter(interactive bool) *ScriptedPrompter {
	return &ScriptedPrompter{
		interactive: interactive,
		answers:     make(map[string]string),
		confirms:    make(map[string]bool),
		errs:        make(map[string]error),
	}
}

// Answer scripts the text answer for a prompt title.
func (p *ScriptedPrompter) Answer(title, answer string) *ScriptedPrompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.answers[title] = answer
	return p
}

// Confirmation scripts the yes/no answer for a prompt title.
func (p *ScriptedPrompter) Confirmation(title string, yes bool) *ScriptedPrompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirms[title] = yes
	return p
}

// Fail makes the prompt with the given title return err.
func (p *ScriptedPrompter) Fail(title string, err error) *ScriptedPrompter {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs[title] = err
	return p
}

// Asked returns the titles of prompts shown while interactive, in order.
func (p *ScriptedPrompter) Asked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.asked...)
}

// Interactive reports the current mode.
func (p *ScriptedPrompter) Interactive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interactive
}

// SetInteractive switches the mode.
func (p *ScriptedPrompter) SetInteractive(interactive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interactive = interactive
}

func (p *ScriptedPrompter) Ask(title string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.interactive {
		return "", nil
	}
	p.asked = append(p.asked, title)
	return p.answers[title], p.errs[title]
}

func (p *ScriptedPrompter) Choose(title string, suggestions []string, def string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.interactive {
		return def, nil
	}
	p.asked = append(p.asked, title)
	if answer, ok := p.answers[title]; ok && answer != "" {
		return answer, p.errs[title]
	}
	return def, p.errs[title]
}

func (p *ScriptedPrompter) Confirm(title string, def bool) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.interactive {
		return def, nil
	}
	p.asked = append(p.asked, title)
	if yes, ok := p.confirms[title]; ok {
		return yes, p.errs[title]
	}
	return def, p.errs[title]
}
