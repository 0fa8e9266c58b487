// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice adds the generic helpers the standard [slices] package lacks.

Filter and OrEmpty never return nil for a non-nil input, so a JSON encoder
renders an empty collection as [] rather than null.
*/
package slice

// Map applies transform to each element.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter keeps the elements for which keep is true.
func Filter[T any](input []T, keep func(T) bool) []T {
	if input == nil {
		return nil
	}
	result := make([]T, 0, len(input))
	for _, v := range input {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce folds input into a single value, starting from initial.
func Reduce[T any, U any](input []T, initial U, reducer func(acc U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}

// OrEmpty returns input, or an empty non-nil slice when input is nil.
func OrEmpty[T any](input []T) []T {
	if input == nil {
		return []T{}
	}
	return input
}
