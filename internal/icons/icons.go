package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio     string
	Play      string
	Pause     string
	Stop      string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Artwork   string
}

var (
	nerdIcons = Icons{
		Audio:     " ", // nf-fa-music
		Play:      "󰐊",  // nf-md-play
		Pause:     "󰏤",  // nf-md-pause
		Stop:      "󰓛",  // nf-md-stop
		Shuffle:   "󰒟",  // nf-md-shuffle
		RepeatAll: "󰑖",  // nf-md-repeat
		RepeatOne: "󰑘",  // nf-md-repeat_once
		Artwork:   "󰋩",  // nf-md-image
	}

	unicodeIcons = Icons{
		Audio:     "🎵 ",
		Play:      "▶",
		Pause:     "⏸",
		Stop:      "⏹",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Artwork:   "🖼",
	}

	noneIcons = Icons{
		Audio:     "",
		Play:      ">",
		Pause:     "||",
		Stop:      "[]",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Artwork:   "*",
	}

	// current holds the active icon set
	current = noneIcons
)

// Valid reports whether style names a known style. Empty means none.
func Valid(style string) bool {
	switch Style(style) {
	case StyleNerd, StyleUnicode, StyleNone, "":
		return true
	default:
		return false
	}
}

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAudio formats a track name with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

func Play() string {
	return current.Play
}

func Pause() string {
	return current.Pause
}

func Stop() string {
	return current.Stop
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Artwork marks tracks whose cover art has been resolved.
func Artwork() string {
	return current.Artwork
}
