// Package ui provides operator-facing terminal output and prompts for frcopy.
//
// Output renders the status lines and message blocks used by the setup
// workflow; Prompter asks questions through Huh forms and falls back to
// defaults when the run is not interactive.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess (green)  - Successful checks and the final success block
//	ColorError   (red)    - Failed checks and error blocks
//	ColorWarning (yellow) - Notes, such as an operator abort
//	ColorInfo    (cyan)   - Informational blocks
//	ColorMuted   (gray)   - Echoed commands and remote output
//
// Use DisableColors() for monochrome output (--no-color).
//
// # Interactivity
//
// A Prompter is either interactive or not. WithInteractive switches the
// mode for the duration of one function and always restores the previous
// mode, which is how setup asks for the App name even in --no-interaction
// runs.
package ui
