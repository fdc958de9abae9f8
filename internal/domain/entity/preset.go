package entity

// Preset is a named starting pane count offered on the selection screen.
type Preset struct {
	Name        string
	Panes       int
	Description string
}

// DefaultPresets returns the built-in window presets.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Basic", Panes: 2, Description: "Perfect for simple multitasking"},
		{Name: "Multi", Panes: 4, Description: "Enhanced productivity with quad view"},
		{Name: "Pro", Panes: 6, Description: "Professional grade multitasking"},
		{Name: "Ultra", Panes: 8, Description: "Maximum efficiency with octa view"},
	}
}
