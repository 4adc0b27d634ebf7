package service

import "github.com/FumiZwerg/ClimateLens-Backend/internal/model"

// classifySeason returns the season of the month and the year the season is attributed to.
// In the northern hemisphere December opens the winter of the following year.
func classifySeason(year, month int, southern bool) (model.Season, int) {
	if southern {
		switch month {
		case 12, 1, 2:
			return model.Summer, year
		case 3, 4, 5:
			return model.Autumn, year
		case 6, 7, 8:
			return model.Winter, year
		default:
			return model.Spring, year
		}
	}

	switch month {
	case 12:
		return model.Winter, year + 1
	case 1, 2:
		return model.Winter, year
	case 3, 4, 5:
		return model.Spring, year
	case 6, 7, 8:
		return model.Summer, year
	default:
		return model.Autumn, year
	}
}

// isSouthern reports whether the latitude lies in the southern hemisphere. Unknown latitude counts as northern.
func isSouthern(latitude *float64) bool {
	return latitude != nil && *latitude < 0
}
