package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// spinnerStyle is the animation shown while a blocking step runs.
var spinnerStyle = spinner.MiniDot

// Spinner animates a label on one terminal line until stopped.
type Spinner struct {
	mu       sync.Mutex
	w        io.Writer
	label    string
	frame    int
	running  bool
	stopChan chan struct{}
	doneChan chan struct{}
	lastLen  int
}

// NewSpinner creates a spinner writing to w.
func NewSpinner(label string, w io.Writer) *Spinner {
	return &Spinner{label: label, w: w}
}

// Start draws the first frame and begins animating.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	s.render()
	go s.animate()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.w, "\r"+strings.Repeat(" ", s.lastLen)+"\r")
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(spinnerStyle.FPS)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerStyle.Frames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := InfoStyle().Render(spinnerStyle.Frames[s.frame]) + " " + s.label + "..."
	fmt.Fprint(s.w, "\r"+line)
	if n := lipgloss.Width(line); n > s.lastLen {
		s.lastLen = n
	}
}

// Spin runs fn with a spinner on screen. Without a terminal fn just runs.
func (o *Output) Spin(label string, fn func()) {
	f, ok := o.w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fn()
		return
	}

	s := NewSpinner(label, o.w)
	s.Start()
	defer s.Stop()
	fn()
}
