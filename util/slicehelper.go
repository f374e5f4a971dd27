package util

import (
	"golang.org/x/exp/constraints"
)

// Matrix makes a 1D slice appear as a 2D grid, row major.
type Matrix[T constraints.Ordered] struct {
	Width  int32
	Height int32
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Ordered](height int32, width int32) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

// Note y is first param, same as New2DMatrix
func (s *Matrix[T]) Get(y int32, x int32) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int32, x int32, value T) {
	s.Data[y*s.Width+x] = value
}

func (s *Matrix[T]) GetRow(y int32) []T {
	return s.Data[y*s.Width : (y+1)*s.Width]
}

// MaxValue and MinValue propagate NaN, same as Max/Min.
func (s *Matrix[T]) MaxValue() T {
	return Max(s.Data...)
}

func (s *Matrix[T]) MinValue() T {
	return Min(s.Data...)
}

func (s *Matrix[T]) GetAs2DSlice() [][]T {
	a := make([][]T, s.Height)
	for height := 0; height < int(s.Height); height++ {
		a[height] = s.GetRow(int32(height))
	}
	return a
}
