/*
NAME
  array2.go

DESCRIPTION
  array2.go implements the generic 2-D array abstraction that the
  original C codebase exposed as a virtual-methods struct (A2Methods_T)
  with implementations for plain and blocked storage (uarray2.c /
  uarray2b.c / a2plain.c). Here it is a small interface plus a type
  parameter, replacing the void* element and void* closure of the C
  apply-function signature with Go generics, per the re-architecture
  called for in the design notes: callers of the codec pipeline never
  branch on storage kind.

LICENSE
  Copyright (C) 2026 Saltmarsh Systems. All Rights Reserved.
*/

// Package array2 provides a row-major 2-D array abstraction used to
// hold pixel and codeword rasters throughout the pipeline.
package array2

// Array2 is the capability set every raster storage kind in this
// codebase implements: construction, dimensions, element access, and
// row-major iteration. Implementations include Plain (dense slice
// storage, ground: uarray2.c) and Blocked (tiled storage, ground:
// uarray2b.c), though the pipeline (package pipeline) only ever
// requires the Array2 interface, never a concrete type.
type Array2[T any] interface {
	Width() int
	Height() int
	At(col, row int) T
	Set(col, row int, v T)
	// MapRowMajor invokes fn for every element in row-major order. It is
	// the Go analogue of A2Methods_T.map_default with the closure
	// represented as a typed callback rather than a void* payload.
	MapRowMajor(fn func(col, row int, v T))
}

// Plain is a dense, unblocked Array2 backed by a single row-major slice.
// This is the Go analogue of UArray2_T / a2plain.c: every element lives
// in one contiguous allocation, and At/Set are O(1) index computations.
type Plain[T any] struct {
	width, height int
	elems         []T
}

// NewPlain allocates a width x height array with all elements zero-
// valued, the Go equivalent of UArray2_new's "all elements initialized
// to zero" guarantee.
func NewPlain[T any](width, height int) *Plain[T] {
	return &Plain[T]{
		width:  width,
		height: height,
		elems:  make([]T, width*height),
	}
}

func (p *Plain[T]) Width() int  { return p.width }
func (p *Plain[T]) Height() int { return p.height }

func (p *Plain[T]) index(col, row int) int {
	return row*p.width + col
}

// At returns the element at (col, row). It panics on an out-of-bounds
// index, matching the original's "Will CRE if col/row out of bounds".
func (p *Plain[T]) At(col, row int) T {
	if col < 0 || col >= p.width || row < 0 || row >= p.height {
		panic("array2: index out of bounds")
	}
	return p.elems[p.index(col, row)]
}

// Set replaces the element at (col, row).
func (p *Plain[T]) Set(col, row int, v T) {
	p.elems[p.index(col, row)] = v
}

// MapRowMajor visits every element in row-major order: all columns of
// row 0, then all columns of row 1, and so on. The codec never depends
// on this order for correctness (every transform is per-pixel or
// per-disjoint-block), but row-major is kept because it matches the PPM
// raster's natural scan order.
func (p *Plain[T]) MapRowMajor(fn func(col, row int, v T)) {
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			fn(col, row, p.At(col, row))
		}
	}
}

// Blocked is an Array2 that stores its elements in square tiles of
// side blockSize, the Go analogue of uarray2b.c's blocked storage. Its
// At/Set/MapRowMajor observable behavior is identical to Plain; only the
// physical layout (and therefore cache locality for tile-sized access
// patterns) differs. The pipeline never chooses between Plain and
// Blocked based on semantics, only on a caller's locality preference.
type Blocked[T any] struct {
	width, height, blockSize int
	blocksPerRow             int
	tiles                    [][]T
}

// NewBlocked allocates a width x height array tiled into blockSize x
// blockSize blocks. blockSize must be positive; a blockSize larger than
// width or height degenerates to one block per axis.
func NewBlocked[T any](width, height, blockSize int) *Blocked[T] {
	if blockSize <= 0 {
		blockSize = 1
	}
	blocksPerRow := (width + blockSize - 1) / blockSize
	blocksPerCol := (height + blockSize - 1) / blockSize
	tiles := make([][]T, blocksPerRow*blocksPerCol)
	for i := range tiles {
		tiles[i] = make([]T, blockSize*blockSize)
	}
	return &Blocked[T]{
		width:        width,
		height:       height,
		blockSize:    blockSize,
		blocksPerRow: blocksPerRow,
		tiles:        tiles,
	}
}

func (b *Blocked[T]) Width() int  { return b.width }
func (b *Blocked[T]) Height() int { return b.height }

func (b *Blocked[T]) locate(col, row int) (tile, offset int) {
	bc, br := col/b.blockSize, row/b.blockSize
	ic, ir := col%b.blockSize, row%b.blockSize
	tile = br*b.blocksPerRow + bc
	offset = ir*b.blockSize + ic
	return
}

func (b *Blocked[T]) At(col, row int) T {
	tile, offset := b.locate(col, row)
	return b.tiles[tile][offset]
}

func (b *Blocked[T]) Set(col, row int, v T) {
	tile, offset := b.locate(col, row)
	b.tiles[tile][offset] = v
}

// MapRowMajor visits elements in row-major (col, row) order regardless
// of physical tile layout, preserving the same externally observable
// order as Plain.MapRowMajor.
func (b *Blocked[T]) MapRowMajor(fn func(col, row int, v T)) {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			fn(col, row, b.At(col, row))
		}
	}
}
