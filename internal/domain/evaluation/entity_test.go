package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRating(t *testing.T) {
	cases := []struct {
		score float64
		want  Rating
	}{
		{100, RatingExcellent},
		{90, RatingExcellent},
		{89.9, RatingVeryGood},
		{80, RatingVeryGood},
		{79.9, RatingGood},
		{70, RatingGood},
		{69.9, RatingSatisfactory},
		{60, RatingSatisfactory},
		{59.9, RatingNeedsImprovement},
		{0, RatingNeedsImprovement},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DeriveRating(c.score), "score %.1f", c.score)
	}
}

func TestSetScore(t *testing.T) {
	var e Evaluation
	e.SetScore(84.5)

	assert.Equal(t, 84.5, *e.OverallScore)
	assert.Equal(t, RatingVeryGood, *e.PerformanceRating)

	e.SetScore(55)
	assert.Equal(t, RatingNeedsImprovement, *e.PerformanceRating)
}
