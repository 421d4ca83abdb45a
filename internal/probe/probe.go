// Package probe reads image files from disk and decodes their format and
// size with imgprobe.
package probe

import (
	"context"
	"os"
	"time"

	"github.com/fumiama/imgprobe"
	"github.com/fumiama/imgprobe/internal/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result describes one probed file. Image is only valid if Err is nil.
type Result struct {
	Path  string
	Bytes int64 // file size on disk
	Image imgprobe.Image
	Err   error
}

// OK reports whether the file was decoded successfully.
func (r Result) OK() bool { return r.Err == nil }

// Options control how files are probed.
type Options struct {
	MaxFileSize int64 // files larger than this fail with imgprobe.ErrTooLarge
	Workers     int   // maximum number of files read concurrently
}

// File reads and decodes the file at p.
func File(p string, maxSize int64) Result {
	start := time.Now()
	res := Result{Path: p}

	f, err := os.Open(p)
	if err != nil {
		res.Err = errors.Wrap(err, "opening file")
		return res
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		res.Err = errors.Wrap(err, "stat")
		return res
	}
	if !fi.Mode().IsRegular() {
		res.Err = errors.New("not a regular file")
		return res
	}
	res.Bytes = fi.Size()

	img, err := imgprobe.DecodeLimitReader(f, maxSize)
	if err != nil {
		res.Err = err
		log.Debug("decode failed", "path", p, "err", err)
		return res
	}
	res.Image = img
	log.Debug("decoded", "path", p, "format", img.Format.String(),
		"width", img.Width, "height", img.Height, "elapsed", time.Since(start))
	return res
}

// Files probes paths concurrently and returns results in the same order.
// Per-file failures are reported in Result.Err; the returned error is only
// set if ctx is canceled.
func Files(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = File(p, opts.MaxFileSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Failed returns the number of results with errors.
func Failed(results []Result) int {
	var n int
	for i := range results {
		if !results[i].OK() {
			n++
		}
	}
	return n
}
