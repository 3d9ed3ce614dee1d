package main

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"fndetector/common/models"
)

// cue is a word that pushes the verdict towards fake (positive) or real (negative)
type cue struct {
	Word   string
	Weight float64
}

var cues = []cue{
	{"shocking", 1.4},
	{"miracle", 1.3},
	{"secret", 1.1},
	{"unbelievable", 1.2},
	{"hoax", 1.0},
	{"exposed", 0.9},
	{"conspiracy", 1.2},
	{"viral", 0.7},
	{"breaking", 0.5},
	{"according", -0.9},
	{"reported", -0.8},
	{"officials", -0.8},
	{"study", -0.7},
	{"percent", -0.6},
	{"spokesperson", -0.9},
	{"statement", -0.6},
}

var similarRealSamples = []string{
	"Health officials said the study, published on Tuesday, found no link between the vaccine and the reported symptoms.",
	"According to the electoral commission, turnout rose 3 percent compared with the previous national vote.",
	"A spokesperson for the ministry confirmed the statement and said the figures would be reviewed next month.",
}

// scorer is a deterministic keyword classifier used in place of the real model
type scorer struct {
	weights map[string]float64
}

func newScorer() *scorer {
	w := make(map[string]float64, len(cues))
	for _, c := range cues {
		w[c.Word] = c.Weight
	}
	return &scorer{weights: w}
}

// Predict labels text as fake when the fake cues outweigh the real ones
func (s *scorer) Predict(text string) models.PredictionResult {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	score := 0.0
	seen := map[string]bool{}
	var matched []cue
	for _, w := range words {
		weight, ok := s.weights[w]
		if !ok {
			continue
		}
		score += weight
		if !seen[w] {
			seen[w] = true
			matched = append(matched, cue{Word: w, Weight: weight})
		}
	}

	pFake := logistic(score)
	fake := pFake > 0.5
	result := models.PredictionResult{
		Prediction:  "real",
		Probability: [2]float64{pFake, 1 - pFake},
		Reasons:     topReasons(matched, fake, 3),
	}
	if fake {
		result.Prediction = "fake"
		result.SimilarReal = similarRealSamples[len(words)%len(similarRealSamples)]
	}
	return result
}

// topReasons returns up to n cue words that support the verdict, strongest first
func topReasons(matched []cue, fake bool, n int) []string {
	var support []cue
	for _, c := range matched {
		if (c.Weight > 0) == fake {
			support = append(support, c)
		}
	}
	sort.SliceStable(support, func(i, j int) bool {
		return math.Abs(support[i].Weight) > math.Abs(support[j].Weight)
	})

	if len(support) == 0 {
		return []string{"No specific reasons identified"}
	}
	if len(support) > n {
		support = support[:n]
	}
	out := make([]string, len(support))
	for i, c := range support {
		out[i] = c.Word
	}
	return out
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
