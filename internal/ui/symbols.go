package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "⚠"
	SymbolNote    = "!"
	SymbolInfo    = "ℹ"
	SymbolCommand = "$"
)
