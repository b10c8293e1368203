package models

import "time"

func cents(v int) *int { return &v }

// SampleShoes returns a starter catalog with release dates relative to now,
// covering all three card variants.
func SampleShoes(now time.Time) []Shoe {
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	shoes := []Shoe{
		{Slug: "tech-challenge-777", Name: "NikeCourt Tech Challenge 20", ImageSrc: "/assets/tech-challenge-777.jpg",
			Price: 16500, ReleaseDate: daysAgo(5), NumOfColors: 2},
		{Slug: "metcon-5-training-shoe", Name: "Nike Metcon 5", ImageSrc: "/assets/metcon-5.jpg",
			Price: 16500, SalePrice: cents(12000), ReleaseDate: daysAgo(90), NumOfColors: 3},
		{Slug: "legend-essential-2", Name: "Nike Legend Essential 2", ImageSrc: "/assets/legend-essential-2.jpg",
			Price: 11000, ReleaseDate: daysAgo(180), NumOfColors: 1},
		{Slug: "air-jordan-1", Name: "Air Jordan 1 Mid", ImageSrc: "/assets/air-jordan-1.jpg",
			Price: 12000, SalePrice: cents(6000), ReleaseDate: daysAgo(5), NumOfColors: 2},
		{Slug: "phantom-vision-2", Name: "Nike Phantom Vision 2", ImageSrc: "/assets/phantom-vision-2.jpg",
			Price: 10000, ReleaseDate: daysAgo(730), NumOfColors: 1},
		{Slug: "react-infinity-2", Name: "Nike React Infinity Run", ImageSrc: "/assets/react-infinity-2.jpg",
			Price: 16000, ReleaseDate: daysAgo(12), NumOfColors: 4},
		{Slug: "air-zoom-pegasus", Name: "Nike Air Zoom Pegasus", ImageSrc: "/assets/air-zoom-pegasus.jpg",
			Price: 12000, SalePrice: cents(9500), ReleaseDate: daysAgo(400), NumOfColors: 5},
		{Slug: "blazer-mid-77", Name: "Nike Blazer Mid '77", ImageSrc: "/assets/blazer-mid-77.jpg",
			Price: 10000, ReleaseDate: daysAgo(60), NumOfColors: 1},
	}
	for i := range shoes {
		shoes[i].IsActive = true
	}
	return shoes
}
