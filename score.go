package docjudge

// Score is an ordinal quality level. The four values are totally ordered:
// Poor < Fair < Good < Excellent.
type Score string

// Score constants, in ascending order.
const (
	ScorePoor      Score = "Poor"
	ScoreFair      Score = "Fair"
	ScoreGood      Score = "Good"
	ScoreExcellent Score = "Excellent"
)

// scoreWeights maps each score to the integer weight used for aggregation.
// The table is fixed; reproducibility of the overall score depends on it.
var scoreWeights = map[Score]int{
	ScorePoor:      1,
	ScoreFair:      2,
	ScoreGood:      3,
	ScoreExcellent: 4,
}

// ParseScore validates a raw score string against the four defined levels.
// Matching is case-sensitive: "poor" is not a valid score.
func ParseScore(raw string) (Score, bool) {
	s := Score(raw)
	_, ok := scoreWeights[s]
	return s, ok
}

// Valid reports whether s is one of the four defined levels.
func (s Score) Valid() bool {
	_, ok := scoreWeights[s]
	return ok
}

// Weight returns the numeric weight of the score. Invalid scores weigh zero.
func (s Score) Weight() int {
	return scoreWeights[s]
}

// Overall reduces the four category scores to a single ordinal. Each
// category's score maps to its weight, the unweighted mean is computed,
// and the mean is bucketed back to an ordinal: >= 3.5 Excellent,
// >= 2.5 Good, >= 1.5 Fair, otherwise Poor.
//
// Categories with an invalid score are skipped; when none contribute
// (which cannot happen after NormalizeJudgment) the neutral default is
// Fair.
func Overall(j *DocumentJudgment) Score {
	if j == nil {
		return ScoreFair
	}

	total, count := 0, 0
	for _, c := range j.Categories() {
		if !c.Judgment.Score.Valid() {
			continue
		}
		total += c.Judgment.Score.Weight()
		count++
	}

	if count == 0 {
		return ScoreFair
	}

	mean := float64(total) / float64(count)
	switch {
	case mean >= 3.5:
		return ScoreExcellent
	case mean >= 2.5:
		return ScoreGood
	case mean >= 1.5:
		return ScoreFair
	default:
		return ScorePoor
	}
}
