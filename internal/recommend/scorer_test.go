package recommend

import "testing"

func TestScore_MainConcernWeights(t *testing.T) {
	tests := []struct {
		concern string
		want    Scores
	}{
		{"wrinkles", Scores{CategoryLifting: 3, CategoryTexture: 0, CategoryPigmentation: 0, CategoryContouring: 0}},
		{"sagging", Scores{CategoryLifting: 3, CategoryTexture: 0, CategoryPigmentation: 0, CategoryContouring: 0}},
		{"dryness", Scores{CategoryLifting: 3, CategoryTexture: 0, CategoryPigmentation: 0, CategoryContouring: 0}},
		{"pores", Scores{CategoryLifting: 0, CategoryTexture: 3, CategoryPigmentation: 0, CategoryContouring: 0}},
		{"acne", Scores{CategoryLifting: 0, CategoryTexture: 3, CategoryPigmentation: 0, CategoryContouring: 0}},
		{"pigmentation", Scores{CategoryLifting: 0, CategoryTexture: 0, CategoryPigmentation: 3, CategoryContouring: 0}},
		{"redness", Scores{CategoryLifting: 0, CategoryTexture: 0, CategoryPigmentation: 3, CategoryContouring: 0}},
		{"asymmetry", Scores{CategoryLifting: 0, CategoryTexture: 0, CategoryPigmentation: 0, CategoryContouring: 3}},
		{"something-else", Scores{CategoryLifting: 1, CategoryTexture: 0, CategoryPigmentation: 0, CategoryContouring: 0}},
	}

	for _, tc := range tests {
		got := Score(Input{MainConcern: []string{tc.concern}})
		for _, c := range Categories() {
			if got[c] != tc.want[c] {
				t.Errorf("concern %q: score[%s] = %d, want %d", tc.concern, c, got[c], tc.want[c])
			}
		}
	}
}

func TestScore_DesiredResultWeights(t *testing.T) {
	tests := []struct {
		result string
		want   Scores
	}{
		{"lifting", Scores{CategoryLifting: 2}},
		{"anti-aging", Scores{CategoryLifting: 2}},
		{"immediate-effect", Scores{CategoryLifting: 2}},
		{"texture", Scores{CategoryTexture: 2}},
		{"wrinkle-reduction", Scores{CategoryTexture: 2}},
		{"brightening", Scores{CategoryPigmentation: 2}},
		{"contouring", Scores{CategoryContouring: 2}},
		// Dual credit.
		{"minimal-downtime", Scores{CategoryTexture: 1, CategoryPigmentation: 1}},
		{"unknown-result", Scores{CategoryLifting: 1}},
	}

	for _, tc := range tests {
		got := Score(Input{DesiredResults: []string{tc.result}})
		for _, c := range Categories() {
			if got[c] != tc.want[c] {
				t.Errorf("result %q: score[%s] = %d, want %d", tc.result, c, got[c], tc.want[c])
			}
		}
	}
}

func TestScore_BudgetVectors(t *testing.T) {
	tests := []struct {
		budget string
		want   [4]int
	}{
		{"1000-2000", [4]int{1, 2, 2, 1}},
		{"2000-5000", [4]int{2, 2, 2, 2}},
		{"5000-10000", [4]int{3, 2, 2, 3}},
		{"considering", [4]int{2, 2, 2, 2}},
		// Unrecognized buckets contribute nothing.
		{"10000-20000", [4]int{0, 0, 0, 0}},
		{"", [4]int{0, 0, 0, 0}},
	}

	for _, tc := range tests {
		got := Score(Input{BudgetRange: tc.budget})
		for i, c := range Categories() {
			if got[c] != tc.want[i] {
				t.Errorf("budget %q: score[%s] = %d, want %d", tc.budget, c, got[c], tc.want[i])
			}
		}
	}
}

func TestRecommend_DefaultsToLifting(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"all empty", Input{}},
		{"unknown budget only", Input{BudgetRange: "whatever"}},
		{"unknown tags everywhere", Input{
			MainConcern:    []string{"mystery"},
			DesiredResults: []string{"mystery"},
			BudgetRange:    "mystery",
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommend(tc.in)
			if rec.Category != CategoryLifting {
				t.Fatalf("expected lifting fallback, got %s (scores %v)", rec.Category, rec.Scores)
			}
			if rec.Package.Category != CategoryLifting {
				t.Fatalf("package category mismatch: %s", rec.Package.Category)
			}
		})
	}
}

func TestRecommend_SingleConcernWins(t *testing.T) {
	rec := Recommend(Input{MainConcern: []string{"pores"}})
	if rec.Category != CategoryTexture {
		t.Fatalf("expected texture, got %s (scores %v)", rec.Category, rec.Scores)
	}
	if got := rec.Scores[CategoryTexture]; got != 3 {
		t.Fatalf("texture score = %d, want 3", got)
	}
}

func TestRecommend_CombinedExample(t *testing.T) {
	rec := Recommend(Input{
		MainConcern:    []string{"asymmetry"},
		DesiredResults: []string{"contouring"},
		BudgetRange:    "5000-10000",
	})

	want := Scores{
		CategoryLifting:      3,
		CategoryTexture:      2,
		CategoryPigmentation: 2,
		CategoryContouring:   8, // 3 concern + 2 result + 3 budget
	}
	for _, c := range Categories() {
		if rec.Scores[c] != want[c] {
			t.Errorf("score[%s] = %d, want %d", c, rec.Scores[c], want[c])
		}
	}
	if rec.Category != CategoryContouring {
		t.Fatalf("expected contouring, got %s", rec.Category)
	}
}

func TestWinner_TieBreaksInFixedOrder(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   Category
	}{
		{"all zero", Scores{}, CategoryLifting},
		{"all equal", Scores{CategoryLifting: 2, CategoryTexture: 2, CategoryPigmentation: 2, CategoryContouring: 2}, CategoryLifting},
		{"texture ties pigmentation", Scores{CategoryTexture: 5, CategoryPigmentation: 5}, CategoryTexture},
		{"pigmentation ties contouring", Scores{CategoryPigmentation: 4, CategoryContouring: 4}, CategoryPigmentation},
		{"later strictly greater", Scores{CategoryLifting: 3, CategoryContouring: 4}, CategoryContouring},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.scores.Winner(); got != tc.want {
				t.Fatalf("Winner() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestWinner_ConsideringBudgetTiesToLifting(t *testing.T) {
	// The "considering" bucket contributes 2 to every category, so with no
	// other answers every category ties and the first in order wins.
	rec := Recommend(Input{BudgetRange: "considering"})
	if rec.Category != CategoryLifting {
		t.Fatalf("expected lifting on four-way tie, got %s", rec.Category)
	}
}

func TestScore_DoesNotMutateInput(t *testing.T) {
	in := Input{
		MainConcern:    []string{"pores", "acne"},
		DesiredResults: []string{"minimal-downtime"},
		BudgetRange:    "2000-5000",
	}
	_ = Score(in)
	if len(in.MainConcern) != 2 || in.MainConcern[0] != "pores" {
		t.Fatal("input slice mutated")
	}
}
