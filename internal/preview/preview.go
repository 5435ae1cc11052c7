// Package preview serves a built site locally and rebuilds it when
// its sources change.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Options configures a Server.
type Options struct {
	// Root is the directory that is served.
	Root string

	// Watch lists the directories whose changes trigger a rebuild.
	// Directories that don't exist are ignored.
	Watch []string

	// Debounce is how long the sources must stay unchanged before a
	// rebuild starts.
	Debounce time.Duration

	// Build rebuilds Root.
	Build func(context.Context) error

	Log *slog.Logger
}

// Server is a development server for a built site.
type Server struct {
	opts Options
}

func New(opts Options) *Server {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Server{opts: opts}
}

// Handler serves files from Root with caching disabled. Directories
// without an index.html are reported as not found instead of listed.
func (s *Server) Handler() http.Handler {
	files := http.FileServer(http.Dir(s.opts.Root))
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if strings.HasSuffix(req.URL.Path, "/") {
			index := filepath.Join(s.opts.Root, filepath.FromSlash(path.Clean("/"+req.URL.Path)), "index.html")
			if _, err := os.Stat(index); err != nil {
				http.NotFound(rw, req)
				return
			}
		}

		rw.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		rw.Header().Set("Pragma", "no-cache")
		rw.Header().Set("Expires", "0")
		files.ServeHTTP(rw, req)
	})
}

// ListenAndRun listens on addr and calls Run.
func (s *Server) ListenAndRun(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Run(ctx, ln)
}

// Run serves on ln and watches for changes until ctx is canceled. A
// failed rebuild is logged and the previous output keeps being
// served.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		ln.Close()
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range s.opts.Watch {
		err := addTree(watcher, dir)
		if err != nil {
			ln.Close()
			return fmt.Errorf("watch %q: %w", dir, err)
		}
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.opts.Log.Info("Serving site", "root", s.opts.Root, "url", "http://"+ln.Addr().String())

	changed := make(chan struct{}, 1)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		<-ctx.Done()

		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	})
	eg.Go(func() error {
		return s.watch(ctx, watcher, changed)
	})
	eg.Go(func() error {
		return s.rebuild(ctx, changed)
	})

	return eg.Wait()
}

func (s *Server) watch(ctx context.Context, watcher *fsnotify.Watcher, changed chan<- struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}

			s.opts.Log.Debug("Change detected", "path", ev.Name, "op", ev.Op.String())
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, ev.Name); err != nil {
						s.opts.Log.Warn("Failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}

			select {
			case changed <- struct{}{}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.opts.Log.Warn("Watcher error", "error", err)
		}
	}
}

func (s *Server) rebuild(ctx context.Context, changed <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
		}

		timer := time.NewTimer(s.opts.Debounce)
	wait:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-changed:
				timer.Reset(s.opts.Debounce)
			case <-timer.C:
				break wait
			}
		}

		s.opts.Log.Info("Rebuilding site")
		err := s.opts.Build(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.opts.Log.Error("Rebuild failed", "error", err)
			continue
		}
		s.opts.Log.Info("Site rebuilt")
	}
}

// addTree watches dir and every directory below it.
func addTree(watcher *fsnotify.Watcher, dir string) error {
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(p)
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
