// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frontend

import (
	"math"
	"strings"

	"github.com/taibuivan/pokedex/pkg/apiclient"
	"github.com/taibuivan/pokedex/pkg/slice"
)

// MaxStars is the width of a star row.
const MaxStars = 5

// AverageRating is the mean rating rounded to one decimal, or 0 without reviews.
func AverageRating(reviews []apiclient.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := slice.Reduce(reviews, 0, func(sum int, review apiclient.Review) int {
		return sum + review.Rating
	})
	return math.Round(float64(total)/float64(len(reviews))*10) / 10
}

// StarRow is a five-slot rating display.
type StarRow struct {
	Full  int
	Half  int
	Empty int
}

// Stars splits avg into full, half and empty slots. A fraction of at least
// one half earns the half star.
func Stars(avg float64) StarRow {
	avg = math.Max(0, math.Min(avg, MaxStars))
	full := int(math.Floor(avg))
	half := 0
	if avg-float64(full) >= 0.5 {
		half = 1
	}
	return StarRow{Full: full, Half: half, Empty: MaxStars - full - half}
}

func (row StarRow) String() string {
	return strings.Repeat("★", row.Full) + strings.Repeat("⯪", row.Half) + strings.Repeat("☆", row.Empty)
}
