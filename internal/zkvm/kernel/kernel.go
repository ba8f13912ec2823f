// Package kernel exposes the accelerated operations to the host interpreter.
// Every entry point decodes its sample tree into core containers, computes,
// and encodes the result back. Failures of any kind (decode, precondition,
// lookup) collapse into a single kernel failure: the host treats all of them
// identically and falls back to its own reference implementation, so a
// returned error is always preferable to a crash.
package kernel

import (
	"errors"
	"fmt"

	"github.com/djkazic/nockchain/internal/logger"
	"github.com/djkazic/nockchain/internal/zkvm/noun"
)

// ErrFail is the single failure signal visible at the boundary. The
// underlying cause remains wrapped for inspection and is logged at debug
// level.
var ErrFail = errors.New("kernel operation failed")

// fail logs the cause with the offending sample's fingerprint, which
// identifies the value without rendering whole trees, and wraps it behind
// ErrFail.
func fail(op string, sam noun.Noun, err error) error {
	fp := noun.Fingerprint(sam)
	logger.Logger().Debug().
		Str("op", op).
		Hex("sam", fp[:]).
		Err(err).
		Msg("kernel operation failed, host falls back")
	return fmt.Errorf("%s: %w", op, errors.Join(ErrFail, err))
}
