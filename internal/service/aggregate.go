package service

import (
	"sort"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
)

// Year bounds used when the request does not limit the period.
const (
	DefaultStartYear = 0
	DefaultEndYear   = 9999
)

type tempValues struct {
	tmin []float64
	tmax []float64
}

func (tv *tempValues) add(element model.Element, vals []float64) {
	switch element {
	case model.ElementTMIN:
		tv.tmin = append(tv.tmin, vals...)
	case model.ElementTMAX:
		tv.tmax = append(tv.tmax, vals...)
	}
}

type yearValues struct {
	annual  tempValues
	seasons map[model.Season]*tempValues
}

func newYearValues() *yearValues {
	yv := &yearValues{seasons: make(map[model.Season]*tempValues, len(model.Seasons))}
	for _, s := range model.Seasons {
		yv.seasons[s] = &tempValues{}
	}

	return yv
}

// aggregator collects daily values into annual buckets keyed by calendar year
// and seasonal buckets keyed by the season's effective year.
type aggregator struct {
	startYear int
	endYear   int
	southern  bool
	years     map[int]*yearValues
}

func newAggregator(startYear, endYear int, southern bool) *aggregator {
	return &aggregator{
		startYear: startYear,
		endYear:   endYear,
		southern:  southern,
		years:     make(map[int]*yearValues),
	}
}

func (a *aggregator) inRange(year int) bool {
	return year >= a.startYear && year <= a.endYear
}

func (a *aggregator) year(y int) *yearValues {
	yv, ok := a.years[y]
	if !ok {
		yv = newYearValues()
		a.years[y] = yv
	}

	return yv
}

// add puts the record's observed values into its annual and seasonal buckets.
// The two range checks are independent: a December record may fall into the
// annual bucket of the last requested year and out of range for its winter.
func (a *aggregator) add(rec *model.DailyRecord) {
	if rec.Element != model.ElementTMIN && rec.Element != model.ElementTMAX {
		return
	}

	vals := rec.Observed()
	season, effectiveYear := classifySeason(rec.Year, rec.Month, a.southern)

	if a.inRange(rec.Year) {
		a.year(rec.Year).annual.add(rec.Element, vals)
	}

	if a.inRange(effectiveYear) {
		a.year(effectiveYear).seasons[season].add(rec.Element, vals)
	}
}

// summaries returns one entry per year of the requested range in ascending order.
// Years without observations get empty buckets.
func (a *aggregator) summaries() []*model.YearlySummary {
	if a.startYear <= a.endYear {
		// stop on equality, y++ past the int maximum wraps around
		for y := a.startYear; ; y++ {
			a.year(y)
			if y == a.endYear {
				break
			}
		}
	}

	years := make([]int, 0, len(a.years))
	for y := range a.years {
		years = append(years, y)
	}
	sort.Ints(years)

	summaries := make([]*model.YearlySummary, 0, len(years))
	for _, y := range years {
		yv := a.years[y]
		summaries = append(summaries, &model.YearlySummary{
			Year:   y,
			Annual: calcMinMax(&yv.annual),
			Spring: calcMinMax(yv.seasons[model.Spring]),
			Summer: calcMinMax(yv.seasons[model.Summer]),
			Autumn: calcMinMax(yv.seasons[model.Autumn]),
			Winter: calcMinMax(yv.seasons[model.Winter]),
		})
	}

	return summaries
}

// calcMinMax reduces the collected values to means rounded to one decimal.
func calcMinMax(tv *tempValues) model.MinMax {
	return model.MinMax{
		Min: mean(tv.tmin),
		Max: mean(tv.tmax),
	}
}

func mean(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}

	var sum float64
	for _, v := range vals {
		sum += v
	}

	m := model.Round(sum/float64(len(vals)), 1)
	return &m
}
