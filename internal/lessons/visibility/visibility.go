// Package visibility backs the packages lesson. Its functions return the
// message a call produces instead of printing, so the lesson decides where
// the text goes.
package visibility

import (
	"fmt"

	"github.com/leapstack-labs/tour/internal/lessons/visibility/internal/secret"
	"github.com/leapstack-labs/tour/internal/lessons/visibility/nested"
)

// Function is exported.
func Function() string {
	return "called `visibility.Function()`"
}

func privateFunction() string {
	return "called `visibility.privateFunction()`"
}

// IndirectAccess reaches an unexported function from inside the package.
func IndirectAccess() string {
	return "called `visibility.IndirectAccess()`, that\n> " + privateFunction()
}

// CallInternal reaches a package under visibility/internal, which only the
// visibility tree may import.
func CallInternal() string {
	return "called `visibility.CallInternal()`, that\n> " + secret.Function()
}

// CallNested calls into a child package, which sees only this package's
// exported identifiers.
func CallNested() string {
	return "called `visibility.CallNested()`, that\n> " + nested.Function()
}

// OpenBox exposes its contents.
type OpenBox[T any] struct {
	Contents T
}

// ClosedBox keeps its contents unexported; other packages can build one
// only through NewClosedBox.
type ClosedBox[T any] struct {
	contents T
}

// NewClosedBox wraps contents in a ClosedBox.
func NewClosedBox[T any](contents T) ClosedBox[T] {
	return ClosedBox[T]{contents: contents}
}

// Describe names the type of the contents without revealing them.
func (b ClosedBox[T]) Describe() string {
	return fmt.Sprintf("a closed box holding a %T", b.contents)
}
