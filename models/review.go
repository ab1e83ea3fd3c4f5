package models

import (
	"fmt"
	"outings/db"

	"gorm.io/gorm/clause"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int
	PlaceID   uint64 `gorm:"not null;index"`
	Place     Place  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64 `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Content   string `gorm:"type:text;not null"`
	Rating    int    `gorm:"not null"`
	Budget    int    `gorm:"not null"`
}

// Summary holds the averages shown on a place page. Averages of no reviews are 0.
type Summary struct {
	Count     int
	AvgRating float64
	AvgBudget float64
}

func ReviewCreate(place *Place, author *User, rating, budget int, content string) (r Review, err error) {
	r = Review{
		PlaceID: place.ID,
		UserID:  author.ID,
		Content: content,
		Rating:  rating,
		Budget:  budget,
	}
	if err = db.Instance.Omit(clause.Associations).Create(&r).Error; err != nil {
		return Review{}, fmt.Errorf("creating review: %w", err)
	}
	r.Place = *place
	r.User = *author
	return r, nil
}

// PlaceReviews returns the reviews of a place, oldest first, with their authors loaded
func PlaceReviews(placeID uint64) ([]Review, error) {
	result := []Review{}
	err := db.Instance.Preload("User").Where("place_id = ?", placeID).Order("id ASC").Find(&result).Error
	if err != nil {
		return nil, fmt.Errorf("loading reviews: %w", err)
	}
	return result, nil
}

func Summarize(reviews []Review) (s Summary) {
	s.Count = len(reviews)
	if s.Count == 0 {
		return
	}
	ratingSum, budgetSum := 0, 0
	for _, r := range reviews {
		ratingSum += r.Rating
		budgetSum += r.Budget
	}
	s.AvgRating = float64(ratingSum) / float64(s.Count)
	s.AvgBudget = float64(budgetSum) / float64(s.Count)
	return
}
