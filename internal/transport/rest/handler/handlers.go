package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/logger"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// WeatherService provides weather service methods.
type WeatherService interface {
	GetStationsInRadius(ctx context.Context, req *model.StationsRequest) ([]model.Station, error)
	GetStationData(ctx context.Context, req *model.StationDataRequest) (*model.StationData, error)
}

// WeatherServer is a server for weather station queries.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

// GetStationsHandler handles GetStationsInRadius request.
func (s *WeatherServer) GetStationsHandler(w http.ResponseWriter, r *http.Request) {
	stationsReq, err := validateStationsParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	stations, err := s.service.GetStationsInRadius(r.Context(), stationsReq)
	if err != nil {
		logger.Error(fmt.Errorf("failed to get stations in radius: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, stations)
}

// GetStationDataHandler handles GetStationData request.
func (s *WeatherServer) GetStationDataHandler(w http.ResponseWriter, r *http.Request) {
	dataReq, err := validateStationDataParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	data, err := s.service.GetStationData(r.Context(), dataReq)

	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		respondNotFound(w, notFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get station data: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, data)
}

// HealthHandler reports that the server is up.
func (s *WeatherServer) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validateStationsParams(params url.Values) (*model.StationsRequest, error) {
	lat, err := requiredFloat(params, "latitude")
	if err != nil {
		return nil, err
	}
	if err = validateLatitude(lat); err != nil {
		return nil, err
	}

	lon, err := requiredFloat(params, "longitude")
	if err != nil {
		return nil, err
	}
	if lon < -180 || lon > 180 {
		return nil, errors.New("longitude should be between -180 and 180")
	}

	radius, err := requiredFloat(params, "radius")
	if err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, errors.New("radius should not be negative")
	}

	countStr := params.Get("count")
	if countStr == "" {
		return nil, errors.New("count parameter not provided in query")
	}

	count, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, fmt.Errorf("count parameter is not a number: %w", err)
	}
	if count < 0 {
		return nil, errors.New("count should not be negative")
	}

	startYear, endYear, err := optionalYears(params)
	if err != nil {
		return nil, err
	}

	return &model.StationsRequest{
		Latitude:  lat,
		Longitude: lon,
		Radius:    radius,
		Count:     count,
		StartYear: startYear,
		EndYear:   endYear,
	}, nil
}

func validateStationDataParams(params url.Values) (*model.StationDataRequest, error) {
	stationID := strings.TrimSpace(params.Get("stationId"))
	if stationID == "" {
		return nil, errors.New("stationId parameter not provided in query")
	}

	startYear, endYear, err := optionalYears(params)
	if err != nil {
		return nil, err
	}

	req := &model.StationDataRequest{
		StationID: stationID,
		StartYear: startYear,
		EndYear:   endYear,
	}

	if latStr := params.Get("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, fmt.Errorf("latitude parameter is not a number: %w", err)
		}
		if err = validateLatitude(lat); err != nil {
			return nil, err
		}
		req.Latitude = &lat
	}

	return req, nil
}

func validateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return errors.New("latitude should be between -90 and 90")
	}

	return nil
}

func requiredFloat(params url.Values, name string) (float64, error) {
	s := params.Get(name)
	if s == "" {
		return 0, fmt.Errorf("%s parameter not provided in query", name)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s parameter is not a number: %w", name, err)
	}

	return v, nil
}

// optionalYears parses startYear and endYear, an empty value means no bound.
func optionalYears(params url.Values) (*int, *int, error) {
	startYear, err := optionalYear(params, "startYear")
	if err != nil {
		return nil, nil, err
	}

	endYear, err := optionalYear(params, "endYear")
	if err != nil {
		return nil, nil, err
	}

	return startYear, endYear, nil
}

func optionalYear(params url.Values, name string) (*int, error) {
	s := strings.TrimSpace(params.Get(name))
	if s == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s parameter is not a number: %w", name, err)
	}
	if v < service.DefaultStartYear || v > service.DefaultEndYear {
		return nil, fmt.Errorf("%s should be between %d and %d", name, service.DefaultStartYear, service.DefaultEndYear)
	}

	return &v, nil
}
