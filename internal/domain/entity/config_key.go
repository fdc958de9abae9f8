package entity

// ConfigKeyInfo describes one configuration key for `multiview config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "panes.initial_count".
	Key string `json:"key"`
	// Type is the Go type name: string, int or bool.
	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted values of an enum key.
	Values []string `json:"values,omitempty"`
	// Range describes numeric constraints such as "1-100".
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g. "Panes", "Logging").
	Section string `json:"section"`
}
