package crfpack

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/crfpack/config"
	"github.com/katalvlaran/crfpack/factorgraph"
	"github.com/katalvlaran/crfpack/feature"
	"github.com/katalvlaran/crfpack/potential"
	"github.com/katalvlaran/crfpack/sample"
)

// Construction failure taxonomy.
var (
	ErrConfiguration  = errors.New("crfpack: configuration error")
	ErrGraphIntegrity = errors.New("crfpack: graph integrity error")
	ErrKeyDecode      = errors.New("crfpack: key decode error")
)

// classify tags err with its taxonomy kind and wraps it with context.
// Cancellation carries no kind.
func classify(err error, format string, args ...interface{}) error {
	kind := kindOf(err)
	if kind == nil {
		return errors.Wrapf(err, format, args...)
	}

	return errors.Wrapf(fmt.Errorf("%w: %w", kind, err), format, args...)
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return nil
	case errors.Is(err, sample.ErrKeyDecode),
		errors.Is(err, sample.ErrKeyMismatch):
		return ErrKeyDecode
	case errors.Is(err, feature.ErrInvalidConfiguration),
		errors.Is(err, potential.ErrInvalidParameter),
		errors.Is(err, factorgraph.ErrInvalidSize),
		errors.Is(err, factorgraph.ErrBadMaxBPIter),
		errors.Is(err, config.ErrInvalidSettings):
		return ErrConfiguration
	default:
		return ErrGraphIntegrity
	}
}
