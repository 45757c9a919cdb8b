package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits for a burst of edits to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads a content directory whenever something in it changes.
type Watcher struct {
	dir      string
	debounce time.Duration
	log      *zap.Logger
	onReload func(*Site)
}

func NewWatcher(dir string, debounce time.Duration, log *zap.Logger, onReload func(*Site)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{dir: dir, debounce: debounce, log: log, onReload: onReload}
}

// Run blocks until ctx is done. A reload that fails validation is logged and
// the previous site stays in place.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	err = filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	w.log.Info("watching content", zap.String("dir", w.dir))

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("content changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			if ev.Has(fsnotify.Create) && isDir(ev.Name) {
				if err := fw.Add(ev.Name); err != nil {
					w.log.Warn("watch new directory", zap.String("path", ev.Name), zap.Error(err))
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.Error(err))
		case <-fire:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.dir)
	if err != nil {
		w.log.Error("reload content, keeping previous version", zap.Error(err))
		return
	}
	w.log.Info("content reloaded", zap.Int("posts", s.Catalog.Len()))
	w.onReload(s)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
