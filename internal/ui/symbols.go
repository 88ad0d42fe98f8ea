package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Check passed or file written
	SymbolFail     = "✗" // Check failed
	SymbolComplete = "●" // Probe produced a value
	SymbolSkipped  = "⊘" // Probe omitted
)
