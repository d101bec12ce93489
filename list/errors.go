package list

import (
	"errors"
	"fmt"
)

// ErrEmptyList reports Head or Tail invoked on the empty list. Use TryHead
// for the non-panicking variant.
var ErrEmptyList = errors.New("list: empty list")

// ErrInvalidOperation reports a count that the receiving list cannot
// satisfy: taking or skipping more elements than exist, a negative count, or
// a negative slice step.
var ErrInvalidOperation = errors.New("list: invalid operation")

func errEmpty(op string) error {
	return fmt.Errorf("%w: %s of empty list", ErrEmptyList, op)
}

func errShort(op string, count, have int) error {
	return fmt.Errorf("%w: %s of %d elements, only %d available", ErrInvalidOperation, op, count, have)
}

func errNegative(op string, count int) error {
	return fmt.Errorf("%w: %s of negative count %d", ErrInvalidOperation, op, count)
}

func errNegativeStep(step int) error {
	return fmt.Errorf("%w: negative slice step %d, reversal is not supported", ErrInvalidOperation, step)
}
