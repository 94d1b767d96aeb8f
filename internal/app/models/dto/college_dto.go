package dto

import (
	"strconv"

	"github.com/yigit/collegehub/internal/app/models"
)

// CollegeListQuery holds the query string of the college listing. Empty values are absent.
type CollegeListQuery struct {
	Location string `form:"location"`
	Course   string `form:"course"`
	MinFee   string `form:"minFee" binding:"omitempty,number"`
	MaxFee   string `form:"maxFee" binding:"omitempty,number"`
	Search   string `form:"search"`
	SortBy   string `form:"sortBy" enums:"fee-asc,fee-desc"`
}

// ToQuery converts the bound query string into a models.CollegeQuery
func (q *CollegeListQuery) ToQuery() (models.CollegeQuery, error) {
	minFee, err := parseFee(q.MinFee)
	if err != nil {
		return models.CollegeQuery{}, err
	}
	maxFee, err := parseFee(q.MaxFee)
	if err != nil {
		return models.CollegeQuery{}, err
	}

	return models.CollegeQuery{
		Location: q.Location,
		Course:   q.Course,
		MinFee:   minFee,
		MaxFee:   maxFee,
		Search:   q.Search,
		SortBy:   models.ParseCollegeSort(q.SortBy),
	}, nil
}

func parseFee(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	fee, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || fee < 0 {
		return nil, ErrInvalidFee
	}
	return &fee, nil
}
