package memory

import (
	"time"

	"github.com/yigit/collegehub/internal/app/models"
)

// DefaultColleges returns the seed colleges. The seed command stores the same records.
func DefaultColleges() []*models.College {
	return []*models.College{
		{ID: "1", Name: "ABC Engineering College", Location: "Hyderabad", Course: "Computer Science", Fee: 120000},
		{ID: "2", Name: "XYZ Institute of Technology", Location: "Bangalore", Course: "Electronics", Fee: 100000},
		{ID: "3", Name: "Sunrise Business School", Location: "Chennai", Course: "MBA", Fee: 150000},
		{ID: "4", Name: "Greenfield Medical College", Location: "Hyderabad", Course: "MBBS", Fee: 250000},
	}
}

// DefaultReviews returns the seed reviews
func DefaultReviews() []*models.Review {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}
	return []*models.Review{
		{ID: "r1", CollegeName: "ABC Engineering College", Rating: 5, Comment: "Excellent infrastructure and faculty. Highly recommended!", CreatedAt: day(2024, time.January, 15)},
		{ID: "r2", CollegeName: "XYZ Institute of Technology", Rating: 4, Comment: "Good college with decent placement opportunities.", CreatedAt: day(2024, time.February, 10)},
		{ID: "r3", CollegeName: "PQR Medical College", Rating: 5, Comment: "Best medical college in the region. Great hospital facilities.", CreatedAt: day(2024, time.March, 5)},
		{ID: "r4", CollegeName: "LMN Business School", Rating: 4, Comment: "Strong industry connections and experienced professors.", CreatedAt: day(2024, time.March, 20)},
		{ID: "r5", CollegeName: "DEF Engineering College", Rating: 3, Comment: "Average college, needs improvement in labs.", CreatedAt: day(2024, time.April, 12)},
	}
}
