package service

// Header pattern defaults
const (
	// DefaultMacroPrefix is the text preceding each field name in the library header
	DefaultMacroPrefix = "#define CMP_VERSION_"
	// MaxMacroPrefixLength bounds the configurable prefix
	MaxMacroPrefixLength = 255
)
