package crfpack

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crfpack/sample"
	"github.com/katalvlaran/crfpack/vocab"
)

// BuildAll builds one Package per sample with at most workers concurrent
// builds (workers < 1 means one per sample). Results keep sample order.
// The first failure stops outstanding work and is returned alone.
func BuildAll(ctx context.Context, samples []*sample.Sample, v *vocab.Vocabulary, cfg Config, workers int) ([]*Package, error) {
	out := make([]*Package, len(samples))
	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p, err := newPackage(gCtx, s, v, cfg)
			if err != nil {
				return errors.WithMessagef(err, "sample %d", i)
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
