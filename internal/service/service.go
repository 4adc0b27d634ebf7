package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/directory"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/logger"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
)

var (
	ErrNoStationData      = errors.New("there is no station data available")
	ErrNoDataInThisPeriod = errors.New("there is no station data in this period available")
)

// NotFoundError is returned when there is no temperature data for a station.
type NotFoundError struct {
	StationID string
	Err       error
}

func (e *NotFoundError) Error() string {
	return e.Err.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=service.go -destination=mock/mock.go ArchiveSource

// ArchiveSource provides raw daily archive text.
type ArchiveSource interface {
	FetchArchive(ctx context.Context, stationID string) (string, error)
}

// WeatherService provides weather station functionality.
type WeatherService struct {
	source    ArchiveSource
	directory *directory.Directory
}

// New creates new WeatherService over a loaded station directory.
func New(source ArchiveSource, dir *directory.Directory) *WeatherService {
	return &WeatherService{
		source:    source,
		directory: dir,
	}
}

// GetStationsInRadius finds the nearest stations around the requested point.
// With a year range only stations whose inventory covers it are considered.
func (ws *WeatherService) GetStationsInRadius(_ context.Context, req *model.StationsRequest) ([]model.Station, error) {
	candidates := ws.directory.Available(req.StartYear, req.EndYear)

	return findStationsInRadius(candidates, req.Latitude, req.Longitude, req.Radius, req.Count), nil
}

// GetStationData builds the annual and seasonal temperature history of a station.
func (ws *WeatherService) GetStationData(ctx context.Context, req *model.StationDataRequest) (*model.StationData, error) {
	startYear, endYear := DefaultStartYear, DefaultEndYear
	if req.StartYear != nil {
		startYear = *req.StartYear
	}
	if req.EndYear != nil {
		endYear = *req.EndYear
	}

	latitude := req.Latitude
	if latitude == nil {
		if st, ok := ws.directory.Lookup(req.StationID); ok {
			latitude = &st.Latitude
		}
	}

	text, err := ws.source.FetchArchive(ctx, req.StationID)
	if err != nil {
		logger.Error(fmt.Errorf("failed to fetch archive of station %s: %w", req.StationID, err))
		return nil, &NotFoundError{StationID: req.StationID, Err: ErrNoStationData}
	}

	summaries, err := aggregateArchive(text, startYear, endYear, isSouthern(latitude))
	if err != nil {
		return nil, fmt.Errorf("failed to read archive of station %s: %w", req.StationID, err)
	}

	if len(summaries) == 0 {
		return nil, &NotFoundError{StationID: req.StationID, Err: ErrNoDataInThisPeriod}
	}

	return &model.StationData{
		StationID: req.StationID,
		Data:      summaries,
	}, nil
}

// aggregateArchive parses every line of the archive text and aggregates it over [startYear, endYear].
func aggregateArchive(text string, startYear, endYear int, southern bool) ([]*model.YearlySummary, error) {
	agg := newAggregator(startYear, endYear, southern)

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)

	for scanner.Scan() {
		rec, ok := parseDailyRecord(strings.TrimRight(scanner.Text(), "\r"))
		if !ok {
			continue
		}

		agg.add(rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return agg.summaries(), nil
}
