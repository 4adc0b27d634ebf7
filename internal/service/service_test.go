package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/directory"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
	mock "github.com/FumiZwerg/ClimateLens-Backend/internal/service/mock"
)

var errTest = errors.New("test error")

func testDirectory() *directory.Directory {
	return directory.New(
		[]model.Station{
			{ID: "PLM00012375", Name: "WARSZAWA-OKECIE", Latitude: 52.166, Longitude: 20.967},
			{ID: "PLM00012330", Name: "WARSZAWA-BIELANY", Latitude: 52.283, Longitude: 20.967},
			{ID: "ZI000067775", Name: "HARARE", Latitude: -17.917, Longitude: 31.133},
		},
		map[string]model.InventoryRange{
			"PLM00012375": {StartYear: 1951, EndYear: 2024},
			"PLM00012330": {StartYear: 2005, EndYear: 2024},
		},
	)
}

func TestGetStationsInRadius(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		request  *model.StationsRequest
		expected []string
	}{
		{
			name:     "nearest first",
			request:  &model.StationsRequest{Latitude: 52.166, Longitude: 20.967, Radius: 50, Count: 5},
			expected: []string{"PLM00012375", "PLM00012330"},
		},
		{
			name:     "count",
			request:  &model.StationsRequest{Latitude: 52.166, Longitude: 20.967, Radius: 50, Count: 1},
			expected: []string{"PLM00012375"},
		},
		{
			name:     "radius",
			request:  &model.StationsRequest{Latitude: 52.166, Longitude: 20.967, Radius: 10, Count: 5},
			expected: []string{"PLM00012375"},
		},
		{
			name: "inventory filter",
			request: &model.StationsRequest{
				Latitude: 52.166, Longitude: 20.967, Radius: 50, Count: 5,
				StartYear: intPtr(2000), EndYear: intPtr(2010),
			},
			expected: []string{"PLM00012375"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ws := New(mock.NewMockArchiveSource(ctrl), testDirectory())

			stations, err := ws.GetStationsInRadius(ctx, tc.request)
			assert.Nil(t, err)
			assert.Equal(t, tc.expected, ids(stations))
		})
	}
}

func TestGetStationData(t *testing.T) {
	ctx := context.Background()

	decemberArchive := archive(
		dlyLine("ZI000067775", 2005, 12, "TMAX", map[int]int{1: 300}),
		dlyLine("ZI000067775", 2005, 12, "TMIN", map[int]int{1: 150}),
	)

	cases := []struct {
		name       string
		request    *model.StationDataRequest
		archive    string
		fetchErr   error
		expectErr  error
		expectLen  int
		checkFirst func(t *testing.T, s *model.YearlySummary)
	}{
		{
			name:      "fetch failure",
			request:   &model.StationDataRequest{StationID: "INVALID_ID", StartYear: intPtr(2000), EndYear: intPtr(2010)},
			fetchErr:  errTest,
			expectErr: ErrNoStationData,
		},
		{
			name:      "start after end",
			request:   &model.StationDataRequest{StationID: "ZI000067775", StartYear: intPtr(2010), EndYear: intPtr(2000)},
			archive:   decemberArchive,
			expectErr: ErrNoDataInThisPeriod,
		},
		{
			name:      "southern latitude from directory",
			request:   &model.StationDataRequest{StationID: "ZI000067775", StartYear: intPtr(2005), EndYear: intPtr(2006)},
			archive:   decemberArchive,
			expectLen: 2,
			checkFirst: func(t *testing.T, s *model.YearlySummary) {
				assert.Equal(t, model.MinMax{Min: floatPtr(15.0), Max: floatPtr(30.0)}, s.Summer)
				assert.Equal(t, model.MinMax{}, s.Winter)
			},
		},
		{
			name: "latitude from request wins",
			request: &model.StationDataRequest{
				StationID: "ZI000067775", StartYear: intPtr(2005), EndYear: intPtr(2006), Latitude: floatPtr(10),
			},
			archive:   decemberArchive,
			expectLen: 2,
			checkFirst: func(t *testing.T, s *model.YearlySummary) {
				assert.Equal(t, model.MinMax{}, s.Summer)
				assert.Equal(t, model.MinMax{Min: floatPtr(15.0), Max: floatPtr(30.0)}, s.Annual)
			},
		},
		{
			name:      "unknown station defaults to northern",
			request:   &model.StationDataRequest{StationID: "XX000000001", StartYear: intPtr(2005), EndYear: intPtr(2006)},
			archive:   decemberArchive,
			expectLen: 2,
			checkFirst: func(t *testing.T, s *model.YearlySummary) {
				assert.Equal(t, model.MinMax{}, s.Summer)
				assert.Equal(t, model.MinMax{}, s.Winter)
			},
		},
		{
			name:      "open range",
			request:   &model.StationDataRequest{StationID: "ZI000067775"},
			archive:   decemberArchive,
			expectLen: DefaultEndYear - DefaultStartYear + 1,
			checkFirst: func(t *testing.T, s *model.YearlySummary) {
				assert.Equal(t, DefaultStartYear, s.Year)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := mock.NewMockArchiveSource(ctrl)
			ws := New(source, testDirectory())

			source.EXPECT().
				FetchArchive(ctx, tc.request.StationID).
				Return(tc.archive, tc.fetchErr)

			data, err := ws.GetStationData(ctx, tc.request)
			if tc.expectErr != nil {
				assert.Nil(t, data)
				assert.True(t, errors.Is(err, tc.expectErr))

				var nf *NotFoundError
				assert.True(t, errors.As(err, &nf))
				assert.Equal(t, tc.request.StationID, nf.StationID)
				return
			}

			assert.Nil(t, err)
			assert.Equal(t, tc.request.StationID, data.StationID)
			assert.Len(t, data.Data, tc.expectLen)
			tc.checkFirst(t, data.Data[0])
		})
	}
}
