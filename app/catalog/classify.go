// Package catalog holds pure domain logic for the glass catalogue, chiefly
// the performance classification of glass types against the standard
// solution categories (security, sound/thermal insulation, energy
// efficiency, decorative, general).
//
// The point scales follow the reference quality standards for safety
// glazing, acoustic performance, thermal transmittance and energy labels:
// each scoring function starts at 1 and adds fixed deltas for qualifying
// characteristics, then the score maps to a five-level rating.
package catalog

import "github.com/vitralapp/vitral/app/models"

// Characteristics are the raw inputs of the classification. ThicknessMm is
// the total pane thickness; Purpose is one of the models.Purpose* tags.
type Characteristics struct {
	Tempered     bool
	Laminated    bool
	LowE         bool
	TripleGlazed bool
	ThicknessMm  float64
	Purpose      string
}

// Assignment is one (solution, rating, primary) result of Classify.
type Assignment struct {
	SolutionKey string
	Rating      string
	Primary     bool
}

// Classify maps glass characteristics to solution assignments. It is a pure
// function: identical input yields identical output, including order. At
// least one assignment is always returned and exactly one is primary.
func Classify(c Characteristics) []Assignment {
	var out []Assignment

	security := ratingFor(securityScore(c))
	if security != models.RatingBasic || c.Purpose == models.PurposeSecurity {
		out = append(out, Assignment{
			SolutionKey: models.SolutionSecurity,
			Rating:      security,
			Primary:     c.Purpose == models.PurposeSecurity,
		})
	}

	if c.Laminated || c.ThicknessMm >= 6 {
		out = append(out, Assignment{
			SolutionKey: models.SolutionSoundInsulation,
			Rating:      ratingFor(soundScore(c)),
		})
	}

	if c.ThicknessMm >= 10 || c.LowE || c.TripleGlazed {
		out = append(out, Assignment{
			SolutionKey: models.SolutionThermalInsulation,
			Rating:      ratingFor(thermalScore(c)),
			Primary:     c.Purpose == models.PurposeInsulation,
		})
	}

	if c.LowE || c.TripleGlazed {
		out = append(out, Assignment{
			SolutionKey: models.SolutionEnergyEfficiency,
			Rating:      ratingFor(energyScore(c)),
		})
	}

	if c.Purpose == models.PurposeDecorative {
		out = append(out, Assignment{
			SolutionKey: models.SolutionDecorative,
			Rating:      models.RatingStandard,
			Primary:     true,
		})
	}

	if c.Purpose == models.PurposeGeneral || len(out) == 0 {
		out = append(out, Assignment{
			SolutionKey: models.SolutionGeneral,
			Rating:      models.RatingStandard,
			Primary:     c.Purpose == models.PurposeGeneral,
		})
	}

	// Invariant: exactly one primary assignment per classified glass type.
	if !hasPrimary(out) {
		out[0].Primary = true
	}
	return out
}

func securityScore(c Characteristics) int {
	score := 1
	if c.Tempered {
		score++
	}
	if c.Laminated {
		score += 2
	}
	if c.ThicknessMm >= 6 {
		score++
	}
	if c.Tempered && c.Laminated {
		score++
	}
	return score
}

func soundScore(c Characteristics) int {
	score := 1
	if c.ThicknessMm >= 6 {
		score++
	}
	if c.ThicknessMm >= 10 {
		score++
	}
	if c.Laminated {
		score += 2
	}
	if c.TripleGlazed {
		score++
	}
	return score
}

func thermalScore(c Characteristics) int {
	score := 1
	if c.ThicknessMm >= 10 {
		score++
	}
	if c.ThicknessMm >= 20 {
		score++
	}
	if c.LowE {
		score += 2
	}
	if c.TripleGlazed {
		score++
	}
	return score
}

func energyScore(c Characteristics) int {
	score := 1
	if c.ThicknessMm >= 10 {
		score++
	}
	if c.LowE {
		score += 2
	}
	if c.TripleGlazed {
		score++
	}
	if c.LowE && c.TripleGlazed {
		score++
	}
	return score
}

func ratingFor(score int) string {
	switch {
	case score >= 5:
		return models.RatingExcellent
	case score >= 4:
		return models.RatingVeryGood
	case score >= 3:
		return models.RatingGood
	case score >= 2:
		return models.RatingStandard
	default:
		return models.RatingBasic
	}
}

func hasPrimary(assignments []Assignment) bool {
	for _, a := range assignments {
		if a.Primary {
			return true
		}
	}
	return false
}
