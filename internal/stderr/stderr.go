//go:build !windows

// Package stderr redirects file descriptor 2 while the TUI owns the
// terminal. The audio backend (oto over ALSA) writes diagnostics straight
// to fd 2, bypassing os.Stderr, and would otherwise tear the layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Capture is an active stderr redirection.
type Capture struct {
	orig int
	r, w *os.File
	done chan struct{}
}

// Start redirects fd 2 into a pipe and passes every non-empty line to sink
// from a background goroutine. Call it before the speaker is opened.
// On error stderr is left untouched and the program can continue.
func Start(sink func(line string)) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, r: r, w: w, done: make(chan struct{})}
	go c.read(sink)
	return c, nil
}

func (c *Capture) read(sink func(string)) {
	defer close(c.done)
	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && sink != nil {
			sink(line)
		}
	}
}

// WriteOriginal writes to the real stderr, bypassing the capture.
// Used for fatal errors that must stay visible.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores fd 2 and waits until every captured line was delivered.
func (c *Capture) Stop() {
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)

	// fd 2 no longer refers to the pipe; closing w delivers EOF.
	c.w.Close()
	<-c.done
	c.r.Close()
}
