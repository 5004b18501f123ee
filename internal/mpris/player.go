package mpris

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/spindle/internal/playback"
	"github.com/llehouerou/spindle/internal/playlist"
	"github.com/llehouerou/spindle/internal/source"
)

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

// Quit is refused; the terminal owns the lifecycle.
func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "Spindle", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{source.MediaTypeMPEG}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter with the
// loop status and shuffle extensions.
type playerAdapter struct {
	service playback.Service
	covers  *CoverCache
	log     *slog.Logger
}

func (p *playerAdapter) Next() error {
	p.service.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.service.Prev()
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.service.State() != playback.StatePlaying {
		return nil
	}
	return p.service.TogglePlayPause()
}

func (p *playerAdapter) PlayPause() error {
	return p.service.TogglePlayPause()
}

func (p *playerAdapter) Stop() error {
	p.service.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	if p.service.State() == playback.StatePlaying {
		return nil
	}
	return p.service.TogglePlayPause()
}

// Seeking is not supported by the player.
func (p *playerAdapter) Seek(types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(string, types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.service.State() {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.service.Snapshot()
	if snap.Index == playlist.NoSelection || snap.Index >= len(snap.Tracks) {
		return types.Metadata{}, nil
	}
	track := snap.Tracks[snap.Index]

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(trackObjectPath(track.ID)),
		Title:       track.Display(),
		TrackNumber: snap.Index + 1,
	}
	if art := p.artURL(track, snap); art != "" {
		meta.ArtUrl = art
	}
	return meta, nil
}

// artURL prefers the embedded cover, then a cover file next to the track.
func (p *playerAdapter) artURL(track playback.Track, snap playback.Snapshot) string {
	if snap.Artwork != nil && p.covers != nil {
		path, err := p.covers.Path(snap.Artwork)
		if err == nil {
			return "file://" + path
		}
		p.log.Warn("cache cover", "trackId", track.ID, "error", err)
	}
	if track.Location != "" {
		if path := FindAlbumArt(track.Location); path != "" {
			return "file://" + path
		}
	}
	return ""
}

func (p *playerAdapter) Volume() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetVolume(float64) error { return nil }

func (p *playerAdapter) Position() (int64, error) { return 0, nil }

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// Next and previous wrap, so both are possible whenever there are tracks.
func (p *playerAdapter) CanGoNext() (bool, error) { return p.service.Len() > 0, nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.service.Len() > 0, nil }

func (p *playerAdapter) CanPlay() (bool, error) { return p.service.Len() > 0, nil }

func (p *playerAdapter) CanPause() (bool, error) { return p.service.Len() > 0, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return false, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	switch p.service.RepeatMode() {
	case playlist.RepeatOne:
		return types.LoopStatusTrack, nil
	case playlist.RepeatAll:
		return types.LoopStatusPlaylist, nil
	case playlist.RepeatOff:
		return types.LoopStatusNone, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	switch status {
	case types.LoopStatusNone:
		p.service.SetRepeatMode(playlist.RepeatOff)
	case types.LoopStatusTrack:
		p.service.SetRepeatMode(playlist.RepeatOne)
	case types.LoopStatusPlaylist:
		p.service.SetRepeatMode(playlist.RepeatAll)
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.service.Shuffle(), nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.service.SetShuffle(shuffle)
	return nil
}

func trackObjectPath(id int64) string {
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%d", id)
}
