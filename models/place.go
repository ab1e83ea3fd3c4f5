package models

import (
	"errors"
	"fmt"
	"outings/db"

	"gorm.io/gorm"
)

const CategoryPlaceholder = "Choose..."

// Place is addressed by its Name in URLs, hence the unique index
type Place struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int
	Name        string `gorm:"type:varchar(200);index:uniq_place_name,unique;not null"`
	Location    string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"type:varchar(200);not null"`
}

type PlaceSummary struct {
	Name        string
	Description string
}

func PlaceCreate(name, location, category, description string) (p Place, err error) {
	if _, err = PlaceByName(name); err == nil {
		return p, ErrDuplicatePlace
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return p, err
	}
	p = Place{
		Name:        name,
		Location:    location,
		Category:    category,
		Description: description,
	}
	if err = db.Instance.Create(&p).Error; err != nil {
		if _, lookupErr := PlaceByName(name); lookupErr == nil {
			return Place{}, ErrDuplicatePlace
		}
		return Place{}, fmt.Errorf("creating place: %w", err)
	}
	return p, nil
}

// PlaceByName returns gorm.ErrRecordNotFound when no place has exactly this name
func PlaceByName(name string) (p Place, err error) {
	err = db.Instance.First(&p, "name = ?", name).Error
	return
}

// PlaceList returns name and description of every place, ordered by name
func PlaceList() ([]PlaceSummary, error) {
	result := []PlaceSummary{}
	err := db.Instance.Model(&Place{}).Select("name, description").Order("name ASC").Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("listing places: %w", err)
	}
	return result, nil
}
