package common

import (
	"fmt"
	"unsafe"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify,
// and do not let it outlive the input slice.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// BytesToSlice is the inverse of SliceToBytes: it reinterprets a raw byte
// buffer as a slice of T without copying. The view shares memory with the
// input.
//
// The base pointer must be aligned for T and the byte length must be an exact
// multiple of T's size; either violation returns an error instead of a
// truncated or empty view, so a length/alignment bug surfaces at the call
// site rather than as silently missing elements.
//
// Parameters:
//   - data: raw byte buffer to reinterpret
//
// Returns:
//   - []T: typed view of the buffer, nil for empty input
//   - error: non-nil on misaligned base pointer or trailing partial element
func BytesToSlice[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := uintptr(unsafe.Alignof(zero))
	if len(data)%size != 0 {
		return nil, fmt.Errorf("byte length %d is not a multiple of element size %d", len(data), size)
	}
	ptr := unsafe.Pointer(&data[0])
	if uintptr(ptr)%align != 0 {
		return nil, fmt.Errorf("byte buffer base address is not aligned to %d", align)
	}
	return unsafe.Slice((*T)(ptr), len(data)/size), nil
}

// Vec2Slice reinterprets a slice of fixed-size 2-arrays as Vec2 values so
// plain array data classifies and dispatches like named-field vectors. Vec2[T]
// is layout-identical to [2]T, so this is a zero-copy view.
func Vec2Slice[T Primitive](data [][2]T) []Vec2[T] {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*Vec2[T])(unsafe.Pointer(&data[0])), len(data))
}

// Vec3Slice reinterprets a slice of fixed-size 3-arrays as Vec3 values.
func Vec3Slice[T Primitive](data [][3]T) []Vec3[T] {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*Vec3[T])(unsafe.Pointer(&data[0])), len(data))
}

// Vec4Slice reinterprets a slice of fixed-size 4-arrays as Vec4 values.
func Vec4Slice[T Primitive](data [][4]T) []Vec4[T] {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*Vec4[T])(unsafe.Pointer(&data[0])), len(data))
}
