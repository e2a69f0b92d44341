// Package diagnostic turns raw Likert answers into the normalized factor
// scores and overall score shown on the result screens.
package diagnostic

import (
	"math"
	"time"

	"talentlab/internal/catalog"
)

// Results is the write-once snapshot of one completed survey pass.
type Results struct {
	Context      map[string]string `json:"context"`
	Scores       map[string]int    `json:"scores"`  // factor id -> 0..100
	Answers      map[string]int    `json:"answers"` // question id -> 1..5
	OverallScore int               `json:"overallScore"`
	SubmittedAt  time.Time         `json:"submittedAt"`
}

// Calculate aggregates answers into per-factor scores on a 0..100 scale
// plus an overall score. Missing answers count as 0, so the function is
// total over partial input; the navigator's completion gate is what keeps
// that branch from mattering in practice.
//
// Each factor mean over the 1..5 domain maps to a percentage via
// round(((mean-1)/4)*100). The overall score is the rounded mean of the
// already-rounded factor scores, not a fresh mean over all raw answers.
// Rounding ties go half away from zero at both stages.
func Calculate(factors []catalog.Factor, context map[string]string, answers map[string]int) Results {
	scores := make(map[string]int, len(factors))
	total := 0
	for _, f := range factors {
		sum := 0
		for _, q := range f.Questions {
			sum += answers[q.ID]
		}
		mean := float64(sum) / float64(len(f.Questions))
		score := int(math.Round(((mean - 1) / 4) * 100))
		scores[f.ID] = score
		total += score
	}

	overall := 0
	if len(factors) > 0 {
		overall = int(math.Round(float64(total) / float64(len(factors))))
	}

	ctxCopy := make(map[string]string, len(context))
	for k, v := range context {
		ctxCopy[k] = v
	}
	ansCopy := make(map[string]int, len(answers))
	for k, v := range answers {
		ansCopy[k] = v
	}

	return Results{
		Context:      ctxCopy,
		Scores:       scores,
		Answers:      ansCopy,
		OverallScore: overall,
		SubmittedAt:  time.Now().UTC(),
	}
}
