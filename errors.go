package flexvec

import "github.com/cockroachdb/errors"

var (
	// ErrAllocationFailure is returned when a capacity block cannot be
	// obtained, or when a fixed-capacity container is asked to hold more
	// than its bound.
	ErrAllocationFailure = errors.New("flexvec: allocation failure")

	// ErrLengthExceeded is returned when a requested size or capacity is
	// larger than the configured size width or the address space allows.
	ErrLengthExceeded = errors.New("flexvec: length exceeded")

	// ErrIndexOutOfRange is returned by checked element access.
	ErrIndexOutOfRange = errors.New("flexvec: index out of range")

	// ErrElementOperation marks a failure raised by an element operation
	// (construct, assign) in the middle of a multi-element algorithm.
	// The original cause stays reachable through errors.Is / errors.As.
	ErrElementOperation = errors.New("flexvec: element operation failed")

	// ErrInvalidConfig is returned for a configuration that cannot be
	// used to build a container.
	ErrInvalidConfig = errors.New("flexvec: invalid configuration")
)

// elementFailure tags err as an element operation failure, keeping the
// cause in the chain.
func elementFailure(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrElementOperation) {
		return err
	}
	return errors.Mark(errors.Wrap(err, op), ErrElementOperation)
}

func allocationFailure(format string, args ...any) error {
	return errors.Wrapf(ErrAllocationFailure, format, args...)
}

func lengthExceeded(n, limit int) error {
	return errors.Wrapf(ErrLengthExceeded, "requested %d, max %d", n, limit)
}

func indexOutOfRange(i, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", i, size)
}
