// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/pokedex/pkg/slice"
)

/*
TestMapFilterReduce covers the nil and populated cases.
*/
func TestMapFilterReduce(t *testing.T) {
	ratings := []int{5, 4, 1}

	assert.Equal(t, []int{10, 8, 2}, slice.Map(ratings, func(v int) int { return v * 2 }))
	assert.Nil(t, slice.Map[int, int](nil, func(v int) int { return v }))

	assert.Equal(t, []int{5, 4}, slice.Filter(ratings, func(v int) bool { return v > 3 }))
	none := slice.Filter(ratings, func(int) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Equal(t, 10, slice.Reduce(ratings, 0, func(acc, v int) int { return acc + v }))
}

/*
TestOrEmpty replaces only nil.
*/
func TestOrEmpty(t *testing.T) {
	assert.NotNil(t, slice.OrEmpty[string](nil))
	assert.Equal(t, []string{"Pikachu"}, slice.OrEmpty([]string{"Pikachu"}))
}
