// Package stack provides a bounded LIFO container for fixed-width integer
// values, meant as the operand store of a calculator or similar integer
// processing tool.
package stack

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	ErrOverflow     = errors.New("stack overflow")
	ErrUnderflow    = errors.New("stack underflow")
	ErrEmpty        = errors.New("stack is empty")
	ErrInvalidCount = errors.New("count must be positive")
)

// Value is the contract required of element types: value equality and a
// minimum representable value. Min must be callable on the zero value of T.
type Value[T any] interface {
	comparable
	Min() T
}

// Stack holds up to maxSize values and exposes them from the top only.
// It belongs to a single goroutine; concurrent access has to be serialized
// by the caller.
type Stack[T Value[T]] struct {
	values  []T
	maxSize uint
}

// New creates a stack holding at most maxSize values. A zero maxSize stands
// for unspecified and resolves to the platform maximum, leaving the stack
// effectively unbounded. Initial values are pushed in the given order under
// the same capacity rules as PushMany; New fails once they no longer fit.
func New[T Value[T]](values []T, maxSize uint) (*Stack[T], error) {
	if maxSize == 0 {
		maxSize = math.MaxInt
	}
	stack := &Stack[T]{
		values:  make([]T, 0, len(values)),
		maxSize: maxSize,
	}
	if err := stack.PushMany(values...); err != nil {
		return nil, fmt.Errorf("could not push initial values: %w", err)
	}
	return stack, nil
}

func (receiver *Stack[T]) Count() uint {
	return uint(len(receiver.values))
}

func (receiver *Stack[T]) MaxSize() uint {
	return receiver.maxSize
}

func (receiver *Stack[T]) Empty() bool {
	return len(receiver.values) == 0
}

func (receiver *Stack[T]) Full() bool {
	return receiver.Count() >= receiver.maxSize
}

// Show returns the stack contents from bottom to top. On an empty stack it
// returns a single-element slice holding T's minimum value instead of an
// empty slice, so a caller always receives something displayable. The
// fallback is indistinguishable from a stored minimum, check Empty when that
// matters.
func (receiver *Stack[T]) Show() []T {
	if receiver.Empty() {
		var zero T
		return []T{zero.Min()}
	}
	return slices.Clone(receiver.values)
}

// Clear removes all values, capacity stays as configured.
func (receiver *Stack[T]) Clear() {
	receiver.values = receiver.values[:0]
}

// Push appends value to the top of the stack. A full stack rejects the value
// with ErrOverflow before anything is inserted.
func (receiver *Stack[T]) Push(value T) error {
	if receiver.Full() {
		return ErrOverflow
	}
	receiver.values = append(receiver.values, value)
	return nil
}

// Pop removes and returns the topmost value.
func (receiver *Stack[T]) Pop() (T, error) {
	if receiver.Empty() {
		var zero T
		return zero, ErrUnderflow
	}
	value, rest := popLast(receiver.values)
	receiver.values = rest
	return value, nil
}

// Peek returns the topmost value without removing it.
func (receiver *Stack[T]) Peek() (T, error) {
	if receiver.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return receiver.values[len(receiver.values)-1], nil
}

// PushMany pushes values in the given order, the last argument ends up on
// top. The batch is not atomic: when the stack fills up partway, values
// pushed so far stay in place and ErrOverflow is returned for the first
// value which did not fit.
func (receiver *Stack[T]) PushMany(values ...T) error {
	for _, value := range values {
		if err := receiver.Push(value); err != nil {
			return err
		}
	}
	return nil
}

// PopMany removes the top n values and returns them from bottom to top, the
// reverse of the order n single pops would produce. Values below the removed
// ones keep their relative order.
func (receiver *Stack[T]) PopMany(n uint) ([]T, error) {
	if n > receiver.Count() {
		return nil, ErrUnderflow
	}
	values, rest := popLastN(receiver.values, n)
	receiver.values = rest
	return values, nil
}

// PeekMany returns the top n values from bottom to top without removing
// them.
func (receiver *Stack[T]) PeekMany(n uint) ([]T, error) {
	if n < 1 {
		return nil, ErrInvalidCount
	}
	if n > receiver.Count() {
		return nil, ErrUnderflow
	}
	return lastN(receiver.values, n), nil
}

// Equal reports whether both stacks have the same capacity and hold the same
// values in the same order.
func (receiver *Stack[T]) Equal(other *Stack[T]) bool {
	if other == nil {
		return false
	}
	return receiver.maxSize == other.maxSize && slices.Equal(receiver.values, other.values)
}

func (receiver *Stack[T]) String() string {
	return fmt.Sprint(receiver.values)
}
