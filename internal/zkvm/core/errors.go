package core

import "errors"

// ErrPrecondition marks arguments that violate an operation's contract:
// mismatched Hadamard lengths, non-power-of-two transform lengths, mismatched
// matrix steps, out-of-range row extraction. All such violations are reported
// as recoverable errors so callers can fall back instead of crashing.
var ErrPrecondition = errors.New("precondition violated")
