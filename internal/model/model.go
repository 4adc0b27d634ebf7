package model

import "math"

// DaysPerRecord is the number of day blocks in one archive line.
const DaysPerRecord = 31

// Station contains weather station metadata.
type Station struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`

	InventoryStartYear *int `json:"-"`
	InventoryEndYear   *int `json:"-"`
}

// InventoryRange is the first and last year a station reported TMIN or TMAX.
type InventoryRange struct {
	StartYear int
	EndYear   int
}

// Element is a measured quantity code of the daily archive.
type Element string

// Supported elements.
const (
	ElementTMIN Element = "TMIN"
	ElementTMAX Element = "TMAX"
)

// DailyRecord is one parsed archive line: a month of daily values for one element.
type DailyRecord struct {
	StationID string
	Year      int
	Month     int
	Element   Element
	// Values holds tenths of a degree Celsius, nil when missing.
	Values [DaysPerRecord]*int
}

// Observed returns the non-missing values in degrees Celsius.
func (r *DailyRecord) Observed() []float64 {
	vals := make([]float64, 0, DaysPerRecord)
	for _, v := range r.Values {
		if v == nil {
			continue
		}
		vals = append(vals, float64(*v)/10.0)
	}

	return vals
}

// Season of the year.
type Season string

// Seasons.
const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// Seasons lists the seasons in output order.
var Seasons = []Season{Spring, Summer, Autumn, Winter}

// MinMax contains mean minimum and maximum temperatures, nil when there is no data.
type MinMax struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// YearlySummary contains annual and seasonal means for one year.
type YearlySummary struct {
	Year   int    `json:"year"`
	Annual MinMax `json:"annual"`
	Spring MinMax `json:"spring"`
	Summer MinMax `json:"summer"`
	Autumn MinMax `json:"autumn"`
	Winter MinMax `json:"winter"`
}

// StationData is a station temperature history.
type StationData struct {
	StationID string           `json:"station_id"`
	Data      []*YearlySummary `json:"data"`
}

// StationsRequest contains radius search parameters.
type StationsRequest struct {
	Latitude  float64
	Longitude float64
	Radius    float64
	Count     int
	StartYear *int
	EndYear   *int
}

// StationDataRequest contains station temperature history parameters.
type StationDataRequest struct {
	StationID string
	StartYear *int
	EndYear   *int
	Latitude  *float64
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
