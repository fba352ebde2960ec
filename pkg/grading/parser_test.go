package grading

import (
	"testing"
)

func TestParseStructuredReply(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantScore    int
		wantFeedback string
		wantFollowup string
	}{
		{
			name:         "failing reply with all fields",
			raw:          `{"score":0,"feedback":"missing return","followup":"what should you return?"}`,
			wantScore:    0,
			wantFeedback: "missing return",
			wantFollowup: "what should you return?",
		},
		{
			name:         "score defaults to zero when absent",
			raw:          `{"feedback":"incomplete"}`,
			wantScore:    0,
			wantFeedback: "incomplete",
			wantFollowup: "",
		},
		{
			name:         "strings default to empty when absent",
			raw:          `{"score":0}`,
			wantScore:    0,
			wantFeedback: "",
			wantFollowup: "",
		},
		{
			name:         "structured reply can carry a passing score",
			raw:          `{"score":1,"feedback":"correct"}`,
			wantScore:    1,
			wantFeedback: "correct",
			wantFollowup: "",
		},
		{
			name:         "surrounding whitespace is ignored",
			raw:          "\n  {\"score\":0,\"feedback\":\"off by one\"}  \n",
			wantScore:    0,
			wantFeedback: "off by one",
			wantFollowup: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)

			if !got.Structured {
				t.Fatalf("Parse(%q) resolved as free-form, want structured", tt.raw)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Feedback != tt.wantFeedback {
				t.Errorf("Feedback = %q, want %q", got.Feedback, tt.wantFeedback)
			}
			if got.Followup != tt.wantFollowup {
				t.Errorf("Followup = %q, want %q", got.Followup, tt.wantFollowup)
			}
		})
	}
}

func TestParseFreeformReply(t *testing.T) {
	markdown := "## FEEDBACK\nWell done, the loop is correct.\n\n## SUMMARY\nSolid grasp of iteration."

	tests := []struct {
		name string
		raw  string
	}{
		{"markdown feedback", markdown},
		{"plain sentence", "Great answer, everything checks out."},
		{"broken json falls through", `{"score":0,"feedback":`},
		{"json array is not the structured shape", `[{"score":0}]`},
		{"bare null is not the structured shape", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)

			if got.Structured {
				t.Fatalf("Parse(%q) resolved as structured, want free-form", tt.raw)
			}
			if got.Score != 1 {
				t.Errorf("Score = %d, want 1", got.Score)
			}
			if got.Followup != "" {
				t.Errorf("Followup = %q, want empty", got.Followup)
			}
		})
	}

	// The free-form branch keeps the entire text as feedback.
	got := Parse(markdown)
	if got.Feedback != markdown {
		t.Errorf("Feedback = %q, want the full reply text", got.Feedback)
	}
}
