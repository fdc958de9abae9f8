package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconVideo   = "\uf03d" // video camera
	IconImage   = "\uf1c5" // image file
	IconConfig  = "\ue615" // config
	IconFolder  = "\uf07b" // folder
	IconLogs    = "\uf0f6" // file-text
	IconCursor  = "\uf054" // chevron-right

	// Panes
	IconPane    = "\uf0db" // columns
	IconGrid    = "\uf00a" // th
	IconStack   = "\uf0c9" // bars
	IconPlay    = "\uf04b" // play
	IconRefresh = "\uf021" // refresh
	IconPlus    = "\uf067" // plus
	IconMoon    = "\uf186" // moon
	IconSun     = "\uf185" // sun
)
