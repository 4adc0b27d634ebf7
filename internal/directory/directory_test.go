package directory

import (
	"testing"

	"github.com/tj/assert"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
)

func intPtr(v int) *int { return &v }

func testDirectory() *Directory {
	stations := []model.Station{
		{ID: "PLM00012375", Name: "WARSZAWA-OKECIE", Latitude: 52.166, Longitude: 20.967},
		{ID: "ZI000067775", Name: "HARARE", Latitude: -17.917, Longitude: 31.133},
		{ID: "GME00127786", Name: "BERLIN-DAHLEM", Latitude: 52.4631, Longitude: 13.3017, Distance: 42},
	}
	inventory := map[string]model.InventoryRange{
		"PLM00012375": {StartYear: 1951, EndYear: 2024},
		"ZI000067775": {StartYear: 1995, EndYear: 2008},
		"UNKNOWN0001": {StartYear: 1900, EndYear: 1950},
	}

	return New(stations, inventory)
}

func TestNew(t *testing.T) {
	d := testDirectory()
	assert.Equal(t, 3, d.Len())

	st, ok := d.Lookup("PLM00012375")
	assert.True(t, ok)
	assert.Equal(t, 1951, *st.InventoryStartYear)
	assert.Equal(t, 2024, *st.InventoryEndYear)

	st, ok = d.Lookup("GME00127786")
	assert.True(t, ok)
	assert.Nil(t, st.InventoryStartYear)
	assert.Equal(t, 0.0, st.Distance)

	_, ok = d.Lookup("UNKNOWN0001")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	d := testDirectory()

	all := d.All()
	all[0].Distance = 12.5
	all[0].Name = "changed"

	st, _ := d.Lookup("PLM00012375")
	assert.Equal(t, 0.0, st.Distance)
	assert.Equal(t, "WARSZAWA-OKECIE", st.Name)
}

func TestAvailable(t *testing.T) {
	d := testDirectory()

	cases := []struct {
		name      string
		startYear *int
		endYear   *int
		expected  []string
	}{
		{
			name:     "no bounds",
			expected: []string{"PLM00012375", "ZI000067775", "GME00127786"},
		},
		{
			name:      "covered by both",
			startYear: intPtr(2000),
			endYear:   intPtr(2005),
			expected:  []string{"PLM00012375", "ZI000067775"},
		},
		{
			name:      "end year after harare",
			startYear: intPtr(2000),
			endYear:   intPtr(2010),
			expected:  []string{"PLM00012375"},
		},
		{
			name:      "only start year",
			startYear: intPtr(1990),
			expected:  []string{"PLM00012375"},
		},
		{
			name:     "only end year",
			endYear:  intPtr(2020),
			expected: []string{"PLM00012375"},
		},
		{
			name:      "nothing covers",
			startYear: intPtr(1800),
			endYear:   intPtr(2030),
			expected:  []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stations := d.Available(tc.startYear, tc.endYear)

			ids := make([]string, 0, len(stations))
			for _, st := range stations {
				ids = append(ids, st.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}
