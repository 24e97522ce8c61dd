//go:build unix

package main

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// resizeWatcher turns SIGWINCH into ResizeEvents. Only the latest event is
// kept when the consumer falls behind.
type resizeWatcher struct {
	size    func() (int, int)
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newResizeWatcher(size func() (int, int)) *resizeWatcher {
	return &resizeWatcher{
		size:    size,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (r *resizeWatcher) start() {
	signal.Notify(r.sigCh, unix.SIGWINCH)
	go r.watchLoop()
}

func (r *resizeWatcher) stop() {
	select {
	case <-r.stopCh:
		return
	default:
	}
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

func (r *resizeWatcher) events() <-chan ResizeEvent {
	return r.eventCh
}

func (r *resizeWatcher) watchLoop() {
	defer close(r.doneCh)
	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			w, h := r.size()
			r.publish(ResizeEvent{Width: w, Height: h})
		}
	}
}

// publish replaces any unconsumed event with ev.
func (r *resizeWatcher) publish(ev ResizeEvent) {
	select {
	case r.eventCh <- ev:
		return
	default:
	}
	select {
	case <-r.eventCh:
	default:
	}
	select {
	case r.eventCh <- ev:
	default:
	}
}
