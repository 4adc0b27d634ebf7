// Package repository provides methods to download GHCN-Daily station lists, inventory and daily archives.
package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
)

// Source errors.
var (
	ErrArchiveNotFound = errors.New("station archive not found")
	ErrBadStatus       = errors.New("unexpected response status")
)

// Options contains data source locations.
type Options struct {
	StationsURL  string
	InventoryURL string
	ArchiveURL   string
	Timeout      time.Duration
}

// Repository downloads data from the GHCN-Daily file server.
type Repository struct {
	client *http.Client
	opts   Options
}

// New creates new repository.
func New(opts Options) *Repository {
	return &Repository{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
	}
}

// FetchArchive downloads the .dly archive of the station.
func (r *Repository) FetchArchive(ctx context.Context, stationID string) (string, error) {
	archiveURL := fmt.Sprintf("%s/%s.dly", r.opts.ArchiveURL, url.PathEscape(stationID))

	body, err := r.get(ctx, archiveURL)
	if errors.Is(err, ErrBadStatus) {
		return "", fmt.Errorf("%w: %s: %v", ErrArchiveNotFound, stationID, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get archive of station %s: %w", stationID, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(data), nil
}

// LoadStations downloads and parses the station list.
func (r *Repository) LoadStations(ctx context.Context) ([]model.Station, error) {
	body, err := r.get(ctx, r.opts.StationsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get stations info from source: %w", err)
	}
	defer body.Close()

	stations, err := parseStations(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stations info: %w", err)
	}

	return stations, nil
}

// LoadInventory downloads the inventory and returns TMIN/TMAX year ranges by station id.
func (r *Repository) LoadInventory(ctx context.Context) (map[string]model.InventoryRange, error) {
	body, err := r.get(ctx, r.opts.InventoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory from source: %w", err)
	}
	defer body.Close()

	inventory, err := parseInventory(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}

	return inventory, nil
}

func (r *Repository) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d", ErrBadStatus, rawURL, resp.StatusCode)
	}

	return resp.Body, nil
}
