package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/report"
	"github.com/abhinav/huffcode/internal/server"
	"github.com/abhinav/huffcode/internal/symtab"
	"github.com/abhinav/huffcode/internal/token"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

// app implements the huffcode application logic
// for a fully resolved configuration.
type app struct {
	Log    *log.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Clock  clock.Clock
	Serve  func(addr string, h http.Handler) error
}

// Run runs the application with the provided configuration,
// reading text from the given files, or Stdin if there are none.
func (app *app) Run(cfg *config, files []string) (err error) {
	if addr := cfg.HTTP; len(addr) > 0 {
		if len(files) > 0 {
			return fmt.Errorf("unexpected arguments %q with -http", files)
		}
		app.Log.Infof("listening on %v", addr)
		return app.Serve(addr, server.New(app.Log.WithName("http"), cfg.Capacity))
	}

	shards := make([]io.Reader, 0, len(files))
	for _, name := range files {
		f, openErr := os.Open(name)
		if openErr != nil {
			return fmt.Errorf("open input: %w", openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		shards = append(shards, f)
	}
	if len(shards) == 0 {
		shards = append(shards, app.Stdin)
	}

	start := app.Clock.Now()
	freqs, total, err := token.CountShards(context.Background(), shards, cfg.Capacity)
	if err != nil {
		return fmt.Errorf("count symbols: %w", err)
	}
	app.Log.Debug("counted symbols",
		"shards", len(shards),
		"total", total,
		"distinct", freqs.Len(),
		"took", app.Clock.Since(start))

	if freqs.Len() > freqs.Capacity() {
		app.Log.Warnf("%d distinct symbols exceed %d buckets: lookups will slow down; increase -capacity",
			freqs.Len(), freqs.Capacity())
	}
	if cfg.Stats {
		app.logStats(freqs)
	}

	start = app.Clock.Now()
	tree, err := huffman.Build(freqs)
	if err != nil {
		return err
	}
	codes := tree.Codes()
	app.Log.Debug("built code table",
		"symbols", tree.Len(),
		"depth", tree.Depth(),
		"took", app.Clock.Since(start))

	return report.New(freqs, codes).Write(app.Stdout, cfg.Format)
}

func (app *app) logStats(freqs *symtab.Table[int]) {
	w := log.Writer{Log: app.Log.WithName("stats"), Level: log.Info}
	_, _ = freqs.Stats().WriteTo(&w)
	_ = w.Close()
}
