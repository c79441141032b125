package config

// CompareConfig defines configuration for the comparison engine
type CompareConfig struct {
	// Mode selects the alignment variant: "mutual" or "target".
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,comparemode"`
	// LookaheadWindow caps the forward lookahead scan during alignment.
	// 0 means the scan runs to the end of the remaining sequence.
	LookaheadWindow int `json:"lookahead_window,omitempty" yaml:"lookahead_window,omitempty" validate:"gte=0"`
	// MaxInputSizeMB rejects documents larger than this before parsing.
	MaxInputSizeMB int `json:"max_input_size_mb,omitempty" yaml:"max_input_size_mb,omitempty" validate:"gt=0"`
	// SanitizeInput runs input markup through an HTML sanitizer before parsing.
	SanitizeInput bool `json:"sanitize_input,omitempty" yaml:"sanitize_input,omitempty"`
}

// NewDefaultCompareConfig creates default comparison configuration
func NewDefaultCompareConfig() CompareConfig {
	return CompareConfig{
		Mode:            DefaultMode,
		LookaheadWindow: DefaultLookaheadWindow,
		MaxInputSizeMB:  DefaultMaxInputSizeMB,
		SanitizeInput:   DefaultSanitizeInput,
	}
}
