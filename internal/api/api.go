package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/config"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/directory"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/logger"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/repository"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/service"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/transport/rest/handler"
)

// DirectoryLoader provides the station list and inventory.
type DirectoryLoader interface {
	LoadStations(ctx context.Context) ([]model.Station, error)
	LoadInventory(ctx context.Context) (map[string]model.InventoryRange, error)
}

// RunAPI runs weather station API.
func RunAPI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.SetLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	repo := repository.New(repository.Options{
		StationsURL:  cfg.StationsURL,
		InventoryURL: cfg.InventoryURL,
		ArchiveURL:   cfg.ArchiveURL,
		Timeout:      cfg.FetchTimeout,
	})

	dir := loadDirectory(context.Background(), repo)
	server := handler.NewWeatherServer(service.New(repo, dir))

	logger.Info(fmt.Sprintf("Starting weather station api at port %s", cfg.Port))

	return http.ListenAndServe(":"+cfg.Port, NewRouter(server, cfg.Origins))
}

// NewRouter registers the API routes behind the CORS handler.
func NewRouter(server *handler.WeatherServer, origins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/stations-query", server.GetStationsHandler).Methods(http.MethodGet)
	r.HandleFunc("/station/data", server.GetStationDataHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", server.HealthHandler).Methods(http.MethodGet)

	options := setupCorsOptions(origins)
	return handlers.CORS(options...)(r)
}

// loadDirectory downloads the station list once. A failed download leaves the
// directory empty so that radius queries answer with no stations.
func loadDirectory(ctx context.Context, loader DirectoryLoader) *directory.Directory {
	logger.Info("Downloading station list")

	stations, err := loader.LoadStations(ctx)
	if err != nil {
		logger.Error(fmt.Errorf("failed to load stations: %w", err))
		stations = nil
	}

	inventory, err := loader.LoadInventory(ctx)
	if err != nil {
		logger.Error(fmt.Errorf("failed to load inventory: %w", err))
		inventory = nil
	}

	dir := directory.New(stations, inventory)
	logger.Info(fmt.Sprintf("Loaded %d stations, inventory for %d stations", dir.Len(), len(inventory)))

	return dir
}
