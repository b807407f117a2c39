package models

import "gorm.io/gorm"

// Performance ratings, ordered worst to best.
const (
	RatingBasic     = "basic"
	RatingStandard  = "standard"
	RatingGood      = "good"
	RatingVeryGood  = "very_good"
	RatingExcellent = "excellent"
)

// RatingRank returns the ordinal position of a rating (basic=0 …
// excellent=4), or -1 for an unknown rating.
func RatingRank(rating string) int {
	switch rating {
	case RatingBasic:
		return 0
	case RatingStandard:
		return 1
	case RatingGood:
		return 2
	case RatingVeryGood:
		return 3
	case RatingExcellent:
		return 4
	}
	return -1
}

// GlassTypeSolution links a glass type to a solution with a performance
// rating. (GlassTypeID, SolutionID) is the composite natural key; at most
// one row per glass type carries IsPrimary.
type GlassTypeSolution struct {
	gorm.Model
	GlassTypeID uint   `gorm:"not null;uniqueIndex:idx_glass_type_solution" json:"glassTypeId"`
	SolutionID  uint   `gorm:"not null;uniqueIndex:idx_glass_type_solution" json:"solutionId"`
	Performance string `gorm:"size:20;not null;default:standard"            json:"performance"`
	IsPrimary   bool   `gorm:"not null;default:false"                       json:"isPrimary"`

	GlassType GlassType     `json:"-"`
	Solution  GlassSolution `gorm:"foreignKey:SolutionID" json:"-"`
}
