// Package recommend implements the treatment recommendation scorer: a pure
// mapping from assessment answers to one of four treatment categories and its
// fixed package. It is the single source of truth consumed by both the public
// preview endpoint and the admin-side re-derivation for persisted leads.
package recommend

// Category is one of the four fixed treatment-package classifications.
type Category string

// The four categories, in tie-break order.
const (
	CategoryLifting      Category = "lifting"
	CategoryTexture      Category = "texture"
	CategoryPigmentation Category = "pigmentation"
	CategoryContouring   Category = "contouring"
)

// categoryOrder fixes the enumeration used everywhere scores are compared.
// The first category reaching the maximum score wins a tie, which also makes
// all-empty input resolve to lifting.
var categoryOrder = [4]Category{
	CategoryLifting,
	CategoryTexture,
	CategoryPigmentation,
	CategoryContouring,
}

// Categories returns the four categories in their fixed enumeration order.
func Categories() [4]Category { return categoryOrder }

// Scores holds the accumulated weight per category for one assessment.
type Scores map[Category]int

// Input is the subset of questionnaire answers the scorer consumes. Unknown
// tags are tolerated: they contribute the +1 lifting fallback.
type Input struct {
	MainConcern    []string `json:"mainConcern"`
	DesiredResults []string `json:"desiredResults"`
	BudgetRange    string   `json:"budgetRange"`
}

// Recommendation is the scorer result: the winning category, the full score
// vector it was derived from, and the category's fixed treatment package.
type Recommendation struct {
	Category Category         `json:"category"`
	Scores   Scores           `json:"scores"`
	Package  TreatmentPackage `json:"package"`
}

// budgetVectors are the per-bucket contributions added to every category when
// the budget answer matches a known bucket. Order follows categoryOrder.
// Unrecognized budget values contribute nothing.
var budgetVectors = map[string][4]int{
	"1000-2000":   {1, 2, 2, 1},
	"2000-5000":   {2, 2, 2, 2},
	"5000-10000":  {3, 2, 2, 3},
	"considering": {2, 2, 2, 2},
}

// Score accumulates the weight vector for the given answers. Main concerns
// weigh 3, desired results weigh 2 (with one dual-credit tag), and the budget
// bucket adds a fixed vector across all categories.
func Score(in Input) Scores {
	s := Scores{
		CategoryLifting:      0,
		CategoryTexture:      0,
		CategoryPigmentation: 0,
		CategoryContouring:   0,
	}

	for _, concern := range in.MainConcern {
		switch concern {
		case "wrinkles", "sagging", "dryness":
			s[CategoryLifting] += 3
		case "pores", "acne":
			s[CategoryTexture] += 3
		case "pigmentation", "redness":
			s[CategoryPigmentation] += 3
		case "asymmetry":
			s[CategoryContouring] += 3
		default:
			s[CategoryLifting]++
		}
	}

	for _, result := range in.DesiredResults {
		switch result {
		case "lifting", "anti-aging", "immediate-effect":
			s[CategoryLifting] += 2
		case "texture", "wrinkle-reduction":
			s[CategoryTexture] += 2
		case "brightening":
			s[CategoryPigmentation] += 2
		case "contouring":
			s[CategoryContouring] += 2
		case "minimal-downtime":
			// Dual credit: low-downtime plans exist in both tracks.
			s[CategoryTexture]++
			s[CategoryPigmentation]++
		default:
			s[CategoryLifting]++
		}
	}

	if vec, ok := budgetVectors[in.BudgetRange]; ok {
		for i, c := range categoryOrder {
			s[c] += vec[i]
		}
	}

	return s
}

// Winner returns the highest-scoring category. Ties resolve to the category
// appearing first in the fixed order lifting, texture, pigmentation,
// contouring.
func (s Scores) Winner() Category {
	best := categoryOrder[0]
	for _, c := range categoryOrder[1:] {
		if s[c] > s[best] {
			best = c
		}
	}
	return best
}

// Recommend scores the input and returns the winning category together with
// its treatment package. It never fails: fully unknown or empty input falls
// back to the lifting package.
func Recommend(in Input) Recommendation {
	scores := Score(in)
	category := scores.Winner()
	return Recommendation{
		Category: category,
		Scores:   scores,
		Package:  PackageFor(category),
	}
}
