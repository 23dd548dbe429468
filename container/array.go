// Package container provides small generic collection types shared across the
// graph, preproc and query packages. It plays the role of the teacher's
// dot-imported util package: callers write ". github.com/chway/ch-router/container"
// and use Array/List/Optional/Tuple/Flags unqualified.
package container

import "golang.org/x/exp/slices"

// Array is a fixed-size, dense slice addressed by int32 node/edge ids.
type Array[T any] []T

func NewArray[T any](size int) Array[T] {
	return make(Array[T], size)
}

func (self Array[T]) Length() int {
	return len(self)
}

// List is a growable slice with Add/Clear, mirroring the teacher's List[T].
type List[T any] []T

func NewList[T any](capacity int) List[T] {
	return make(List[T], 0, capacity)
}

func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}

func (self *List[T]) Clear() {
	*self = (*self)[:0]
}

func (self List[T]) Length() int {
	return len(self)
}

// Contains reports whether value is present in list.
func Contains[T comparable](list List[T], value T) bool {
	return slices.Contains(list, value)
}
