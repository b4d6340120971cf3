package theme

type Theme struct {
	Name string

	// semantic
	Primary string
	Success string
	Error   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// task state
	DoneBg    string
	DoneFg    string
	PendingBg string
	PendingFg string

	// calendar
	Badge   string
	Today   string
	Outside string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	HelpText     string
	SubtitleText string
}
