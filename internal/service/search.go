package service

import (
	"sort"

	"github.com/umahmood/haversine"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
)

// findStationsInRadius returns copies of the stations lying within radiusKm of the point,
// nearest first, with the distance in km rounded to two decimals. At most count stations are returned.
func findStationsInRadius(stations []model.Station, lat, lon, radiusKm float64, count int) []model.Station {
	if count <= 0 || len(stations) == 0 {
		return []model.Station{}
	}

	point := haversine.Coord{Lat: lat, Lon: lon}

	found := make([]model.Station, 0)
	for _, st := range stations {
		_, km := haversine.Distance(point, haversine.Coord{Lat: st.Latitude, Lon: st.Longitude})
		if km > radiusKm {
			continue
		}

		// st is a copy, the directory entry keeps its zero distance
		st.Distance = model.Round(km, 2)
		found = append(found, st)
	}

	// equally distant stations keep directory order
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Distance < found[j].Distance
	})

	if len(found) > count {
		found = found[:count]
	}

	return found
}
