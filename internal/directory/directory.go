// Package directory holds the station list loaded at startup as a read-only snapshot.
package directory

import "github.com/FumiZwerg/ClimateLens-Backend/internal/model"

// Directory is an immutable set of stations. Callers always receive copies.
type Directory struct {
	stations []model.Station
	byID     map[string]int
}

// New creates a directory from stations, joining the inventory year ranges by station id.
func New(stations []model.Station, inventory map[string]model.InventoryRange) *Directory {
	d := &Directory{
		stations: make([]model.Station, 0, len(stations)),
		byID:     make(map[string]int, len(stations)),
	}

	for _, st := range stations {
		st.Distance = 0
		st.InventoryStartYear, st.InventoryEndYear = nil, nil

		if inv, ok := inventory[st.ID]; ok {
			start, end := inv.StartYear, inv.EndYear
			st.InventoryStartYear = &start
			st.InventoryEndYear = &end
		}

		if _, exists := d.byID[st.ID]; !exists {
			d.byID[st.ID] = len(d.stations)
		}
		d.stations = append(d.stations, st)
	}

	return d
}

// Len returns the number of stations.
func (d *Directory) Len() int {
	return len(d.stations)
}

// All returns all stations.
func (d *Directory) All() []model.Station {
	all := make([]model.Station, len(d.stations))
	copy(all, d.stations)
	return all
}

// Lookup returns the station with the given id.
func (d *Directory) Lookup(id string) (model.Station, bool) {
	i, ok := d.byID[id]
	if !ok {
		return model.Station{}, false
	}

	return d.stations[i], true
}

// Available returns the stations whose inventory covers [startYear, endYear].
// A nil bound is not checked; stations without inventory only pass when both bounds are nil.
func (d *Directory) Available(startYear, endYear *int) []model.Station {
	if startYear == nil && endYear == nil {
		return d.All()
	}

	available := make([]model.Station, 0)
	for _, st := range d.stations {
		if st.InventoryStartYear == nil || st.InventoryEndYear == nil {
			continue
		}
		if startYear != nil && *st.InventoryStartYear > *startYear {
			continue
		}
		if endYear != nil && *st.InventoryEndYear < *endYear {
			continue
		}

		available = append(available, st)
	}

	return available
}
