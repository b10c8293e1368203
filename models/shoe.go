package models

import (
	"time"

	"github.com/carneiroDotDev/sole-and-ankle/views"
	"gorm.io/gorm"
)

// Shoe represents a shoe in the catalog. Prices are stored in cents.
type Shoe struct {
	gorm.Model
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"not null" json:"name"`
	ImageSrc    string    `json:"image_src"`
	Price       int       `gorm:"not null" json:"price"`
	SalePrice   *int      `json:"sale_price"`
	ReleaseDate time.Time `gorm:"index" json:"release_date"`
	NumOfColors int       `gorm:"not null" json:"num_of_colors"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
}

// CardProps converts the shoe into the attributes its card is rendered from.
func (s Shoe) CardProps() views.ShoeCardProps {
	return views.ShoeCardProps{
		Slug:        s.Slug,
		Name:        s.Name,
		ImageSrc:    s.ImageSrc,
		Price:       s.Price,
		SalePrice:   s.SalePrice,
		ReleaseDate: s.ReleaseDate,
		NumOfColors: s.NumOfColors,
	}
}
