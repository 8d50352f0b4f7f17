package quadindex

import "errors"

// ErrOutOfBounds is returned by Insert when the point lies outside the
// tree's boundary. The tree is left unchanged.
var ErrOutOfBounds = errors.New("quadindex: point is outside the tree boundary")

// ErrInvalidCapacity is returned by any mutating call given a capacity less
// than 1. The tree is left unchanged.
var ErrInvalidCapacity = errors.New("quadindex: capacity must be >= 1")
