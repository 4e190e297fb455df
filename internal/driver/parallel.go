package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cexpand/internal/diag"
	"cexpand/internal/source"
)

// PathResult pairs an input path with its expansion outcome. Err is set only
// for I/O failures; expansion problems land in Result.Bag instead.
type PathResult struct {
	Path   string
	Result *ExpandResult
	Err    error
}

// ExpandPaths expands every path with up to jobs workers. jobs <= 0 means
// GOMAXPROCS. Results keep input order regardless of completion order.
func ExpandPaths(ctx context.Context, paths []string, opts Options, jobs int) ([]PathResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	results := make([]PathResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Expand(path, opts)
			if err != nil {
				// Fold the failure into a bag so the caller renders it like
				// any other diagnostic instead of aborting the whole batch.
				bag := diag.NewBag(1)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  fmt.Sprintf("failed to load %q: %v", path, err),
					Primary:  source.Span{},
				})
				results[i] = PathResult{Path: path, Result: &ExpandResult{Bag: bag}, Err: err}
				return nil
			}
			results[i] = PathResult{Path: path, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
