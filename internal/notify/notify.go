// Package notify posts desktop notifications when the track changes.
package notify

import (
	"log/slog"

	"github.com/llehouerou/spindle/internal/mpris"
	"github.com/llehouerou/spindle/internal/playback"
)

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// defaultIcon is the themed icon used when no cover file exists.
const defaultIcon = "audio-x-generic"

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // image path or icon name
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // 0 = new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Watch posts a "now playing" notification each time a new track
// becomes current, replacing the previous one. It returns once sub is
// closed. Failures are logged and never stop the loop.
func Watch(sub *playback.Subscription, n Notifier, log *slog.Logger) {
	var lastID uint32
	for {
		select {
		case e := <-sub.TrackChanged:
			if e.Current == nil {
				continue
			}
			if e.Previous != nil && e.Previous.ID == e.Current.ID {
				continue
			}
			id, err := n.Notify(nowPlaying(*e.Current, lastID))
			if err != nil {
				log.Debug("notify", "trackId", e.Current.ID, "error", err)
				continue
			}
			if id != 0 {
				lastID = id
			}
		case <-sub.Done:
			return
		}
	}
}

func nowPlaying(t playback.Track, replaces uint32) Notification {
	icon := defaultIcon
	if t.Location != "" {
		if path := mpris.FindAlbumArt(t.Location); path != "" {
			icon = path
		}
	}
	return Notification{
		Title:      "Now playing",
		Body:       t.Display(),
		Icon:       icon,
		Timeout:    -1,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
