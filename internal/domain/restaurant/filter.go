package restaurant

import "strings"

// AllCategories is the category value clients send to mean "no filter".
const AllCategories = "Tout"

type Filter struct {
	Category       string
	MinRating      *float64
	MaxDeliveryFee *float64
	MaxTime        *int
}

func NewFilter(category string, minRating, maxDeliveryFee *float64, maxTime *int) Filter {
	category = strings.TrimSpace(category)
	if category == AllCategories {
		category = ""
	}
	return Filter{
		Category:       category,
		MinRating:      minRating,
		MaxDeliveryFee: maxDeliveryFee,
		MaxTime:        maxTime,
	}
}
