//go:build !linux

package notify

type stubNotifier struct{}

// New returns a notifier that drops everything on non-Linux platforms.
func New() (Notifier, error) {
	return stubNotifier{}, nil
}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(uint32) error { return nil }
