// Package grading resolves the dual-format reply contract of the
// evaluation prompt: the grader answers with a JSON object when the
// learner's response failed, and with free-form markdown when it passed.
package grading

import (
	"encoding/json"
	"strings"
)

// Result is the resolved verdict of one evaluation reply.
type Result struct {
	Score    int
	Feedback string
	Followup string
	// Structured reports which branch of the contract produced the
	// result: true for the JSON shape, false for free-form text.
	Structured bool
}

type structuredReply struct {
	Score    *int   `json:"score"`
	Feedback string `json:"feedback"`
	Followup string `json:"followup"`
}

// Parse resolves a raw grader reply.
//
// A reply that unmarshals as the structured object uses its fields,
// with score defaulting to 0 and the strings to "". Anything else is
// the free-form shape, which by contract means the response passed:
// score 1, the whole text as feedback, no followup. Parse never fails;
// a malformed reply is a passing free-form reply, not an error.
func Parse(raw string) Result {
	text := strings.TrimSpace(raw)

	var reply structuredReply
	if !strings.HasPrefix(text, "{") || json.Unmarshal([]byte(text), &reply) != nil {
		return Result{
			Score:    1,
			Feedback: text,
		}
	}

	score := 0
	if reply.Score != nil {
		score = *reply.Score
	}
	return Result{
		Score:      score,
		Feedback:   reply.Feedback,
		Followup:   reply.Followup,
		Structured: true,
	}
}
