//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestValid(t *testing.T) {
	tests := []struct {
		style string
		want  bool
	}{
		{"nerd", true},
		{"unicode", true},
		{"none", true},
		{"", true},
		{"NERD", false},
		{"emoji", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.style); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestFormatAudio(t *testing.T) {
	tests := []struct {
		style    string
		input    string
		expected string
	}{
		{"none", "song.mp3", "song.mp3"},
		{"nerd", "song.mp3", " song.mp3"},
		{"unicode", "song.mp3", "🎵 song.mp3"},
		{"none", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.style+"/"+tt.input, func(t *testing.T) {
			Init(tt.style)
			if got := FormatAudio(tt.input); got != tt.expected {
				t.Errorf("FormatAudio(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}

	Init("none")
}

func TestTransportIcons(t *testing.T) {
	tests := []struct {
		style string
		play  string
		pause string
		stop  string
	}{
		{"none", ">", "||", "[]"},
		{"unicode", "▶", "⏸", "⏹"},
		{"nerd", "󰐊", "󰏤", "󰓛"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := Play(); got != tt.play {
				t.Errorf("Play() = %q, want %q", got, tt.play)
			}
			if got := Pause(); got != tt.pause {
				t.Errorf("Pause() = %q, want %q", got, tt.pause)
			}
			if got := Stop(); got != tt.stop {
				t.Errorf("Stop() = %q, want %q", got, tt.stop)
			}
		})
	}

	Init("none")
}

func TestModeIcons(t *testing.T) {
	tests := []struct {
		style     string
		shuffle   string
		repeatAll string
		repeatOne string
	}{
		{"none", "[S]", "[R]", "[1]"},
		{"unicode", "🔀", "🔁", "🔂"},
		{"nerd", "󰒟", "󰑖", "󰑘"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			if got := Shuffle(); got != tt.shuffle {
				t.Errorf("Shuffle() = %q, want %q", got, tt.shuffle)
			}
			if got := RepeatAll(); got != tt.repeatAll {
				t.Errorf("RepeatAll() = %q, want %q", got, tt.repeatAll)
			}
			if got := RepeatOne(); got != tt.repeatOne {
				t.Errorf("RepeatOne() = %q, want %q", got, tt.repeatOne)
			}
		})
	}

	Init("none")
}

func TestArtwork_NonEmptyForAllStyles(t *testing.T) {
	for _, style := range []string{"none", "unicode", "nerd"} {
		Init(style)
		if Artwork() == "" {
			t.Errorf("Artwork() empty for style %q", style)
		}
	}
	Init("none")
}
