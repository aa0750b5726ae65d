package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/listsplit/pkg/log"
)

// Watch runs the split once, then again every time the input file is written
// or recreated, until ctx is cancelled. Failed runs are logged and do not stop
// the loop.
//
// The input's directory is watched rather than the file itself so editors
// that replace the file on save are still picked up.
func (r *Runner) Watch(ctx context.Context) error {
	target, err := filepath.Abs(r.cfg.Input)
	if err != nil {
		return fmt.Errorf("resolve input: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	r.runLogged()

	d := newDebouncer(r.cfg.Debounce, r.runLogged)
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			r.logger.Debug("input changed", log.String("op", event.Op.String()))
			d.trigger()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watcher error", log.Err(err))
		}
	}
}

func (r *Runner) runLogged() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.Run(); err != nil {
		r.logger.Error("split failed", log.Err(err))
	}
}

// debouncer coalesces bursts of triggers into one call of fn.
type debouncer struct {
	delay time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool

	// one count per scheduled or running call
	wg sync.WaitGroup
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.cancelLocked()
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.fn()
	})
}

// stop cancels a pending call and waits for a running one to return.
func (d *debouncer) stop() {
	d.mu.Lock()
	d.stopped = true
	d.cancelLocked()
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *debouncer) cancelLocked() {
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.timer = nil
}
