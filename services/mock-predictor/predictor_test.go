package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_FakeVerdict(t *testing.T) {
	res := newScorer().Predict("SHOCKING: secret miracle cure the government calls a hoax!")

	assert.Equal(t, "fake", res.Prediction)
	assert.Greater(t, res.Probability[0], 0.5)
	assert.InDelta(t, 1.0, res.Probability[0]+res.Probability[1], 1e-9)
	assert.Equal(t, []string{"shocking", "miracle", "secret"}, res.Reasons)
	assert.NotEmpty(t, res.SimilarReal)
}

func TestScorer_RealVerdict(t *testing.T) {
	res := newScorer().Predict("According to officials, the study reported a 4 percent rise.")

	assert.Equal(t, "real", res.Prediction)
	assert.Less(t, res.Probability[0], 0.5)
	assert.Equal(t, []string{"according", "officials", "reported"}, res.Reasons)
	assert.Empty(t, res.SimilarReal)
}

func TestScorer_NoCues(t *testing.T) {
	res := newScorer().Predict("The cat sat on the mat.")

	assert.Equal(t, "real", res.Prediction)
	assert.Equal(t, [2]float64{0.5, 0.5}, res.Probability)
	assert.Equal(t, []string{"No specific reasons identified"}, res.Reasons)
}

func TestScorer_RepeatedCueCountsOnceInReasons(t *testing.T) {
	res := newScorer().Predict("hoax hoax hoax")

	assert.Equal(t, "fake", res.Prediction)
	assert.Equal(t, []string{"hoax"}, res.Reasons)
}
