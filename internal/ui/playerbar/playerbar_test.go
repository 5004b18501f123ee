package playerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/spindle/internal/artwork"
	"github.com/llehouerou/spindle/internal/icons"
	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/ui/testutil"
)

func TestNewState(t *testing.T) {
	snap := playback.Snapshot{
		Tracks:          make([]playback.Track, 3),
		Index:           1,
		State:           playback.StatePaused,
		RepeatMode:      playlist.RepeatAll,
		Shuffle:         true,
		MaxTracks:       20,
		ControlsEnabled: true,
		Title:           "Song",
		Artwork:         &artwork.Image{Width: 500, Height: 400},
	}

	s := NewState(snap)

	assert.Equal(t, playback.StatePaused, s.Status)
	assert.Equal(t, "Song", s.Title)
	assert.Equal(t, 2, s.Position)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 20, s.Max)
	assert.Equal(t, "500x400", s.ArtworkSize)
	assert.True(t, s.Shuffle)
	assert.True(t, s.Enabled)
}

func TestNewState_NoSelection(t *testing.T) {
	s := NewState(playback.Snapshot{Index: playlist.NoSelection})

	assert.Equal(t, 0, s.Position)
	assert.Empty(t, s.ArtworkSize)
	assert.False(t, s.Enabled)
}

func TestRender(t *testing.T) {
	icons.Init("none")

	tests := []struct {
		name    string
		state   State
		want    []string
		notWant []string
	}{
		{
			name:  "empty playlist",
			state: State{},
			want:  []string{"[]", "No track selected", "0/0"},
		},
		{
			name: "playing with modes",
			state: State{
				Status: playback.StatePlaying, Title: "Song", Position: 1, Total: 2,
				Shuffle: true, RepeatMode: playlist.RepeatOne, Enabled: true,
			},
			want:    []string{">", "Song", "1/2", "[S]", "[1]"},
			notWant: []string{"[R]", "full"},
		},
		{
			name: "paused at capacity with artwork",
			state: State{
				Status: playback.StatePaused, Title: "Song", Position: 2, Total: 2, Max: 2,
				ArtworkSize: "64x64", RepeatMode: playlist.RepeatAll, Enabled: true,
			},
			want:    []string{"||", "full", "* 64x64", "[R]"},
			notWant: []string{"[S]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := testutil.StripANSI(Render(tt.state, 60))
			lines := strings.Split(out, "\n")

			assert.Len(t, lines, Height)
			for _, line := range lines {
				assert.Equal(t, 60, lipgloss.Width(line), "line %q", line)
			}
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestRender_LongTitleTruncated(t *testing.T) {
	icons.Init("none")
	s := State{Title: strings.Repeat("x", 200), Total: 1, Position: 1, Enabled: true}

	out := testutil.StripANSI(Render(s, 40))

	assert.Contains(t, out, "...")
	assert.Contains(t, out, "1/1")
}
