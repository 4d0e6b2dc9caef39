package exec

import (
	"bytes"
	"context"
	"regexp"

	"github.com/frcopy/frcopy/internal/logger"
)

// commandNotFoundPatterns detect "command not found" output from common shells.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): not found`),
}

// IsCommandNotFound checks if the error output indicates a missing command.
// Returns the command name (if extractable) and whether it's a command-not-found error.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	if exitCode != 127 {
		return "", false
	}

	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return matches[1], true
		}
	}

	return "", true
}

// Prober answers whether a command line can be executed successfully.
type Prober interface {
	CanExec(ctx context.Context, commandLine string) bool
}

// ShellProber runs probe commands through the local shell.
type ShellProber struct {
	Log logger.Logger
}

// NewShellProber creates a prober that logs probe details to log.
func NewShellProber(log logger.Logger) *ShellProber {
	if log == nil {
		log = logger.Noop()
	}
	return &ShellProber{Log: log}
}

// CanExec returns true iff commandLine exits with status zero.
// Stdin is not attached and output is discarded. A missing binary, a spawn
// failure and a non-zero exit all report false.
func (p *ShellProber) CanExec(ctx context.Context, commandLine string) bool {
	var stderr bytes.Buffer

	exitCode, err := ExecuteLocal(ctx, commandLine, "", nil, &stderr)
	if err != nil {
		p.Log.Debug("probe %q could not start: %v", commandLine, err)
		return false
	}

	if name, missing := IsCommandNotFound(stderr.String(), exitCode); missing {
		p.Log.Debug("probe %q: command not found (%s)", commandLine, name)
		return false
	}

	if exitCode != 0 {
		p.Log.Debug("probe %q exited with %d", commandLine, exitCode)
		return false
	}

	return true
}

// CanExec runs commandLine with a throwaway prober.
func CanExec(ctx context.Context, commandLine string) bool {
	return NewShellProber(nil).CanExec(ctx, commandLine)
}
