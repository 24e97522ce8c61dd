//go:build !unix

package main

// resizeWatcher never fires on platforms without SIGWINCH; the rain keeps
// the size it started with.
type resizeWatcher struct {
	eventCh chan ResizeEvent
}

func newResizeWatcher(func() (int, int)) *resizeWatcher {
	return &resizeWatcher{eventCh: make(chan ResizeEvent)}
}

func (r *resizeWatcher) start() {}

func (r *resizeWatcher) stop() {}

func (r *resizeWatcher) events() <-chan ResizeEvent {
	return r.eventCh
}
