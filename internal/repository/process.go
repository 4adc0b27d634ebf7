package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/logger"
	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
)

const inventoryMinLength = 45

// parseStations reads the headerless station csv:
// id, latitude, longitude, elevation, state, name, gsn flag, hcn/crn flag, wmo id.
func parseStations(r io.Reader) ([]model.Station, error) {
	// station names are latin-1
	reader := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	stations := make([]model.Station, 0)
	skipped := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			continue
		}
		if err != nil {
			return nil, err
		}

		st, err := parseStation(row)
		if err != nil {
			skipped++
			continue
		}

		stations = append(stations, *st)
	}

	if skipped > 0 {
		logger.Debug(fmt.Sprintf("skipped %d malformed station rows", skipped))
	}

	return stations, nil
}

func parseStation(row []string) (*model.Station, error) {
	if len(row) < 6 {
		return nil, fmt.Errorf("station row has %d columns", len(row))
	}

	latStr := strings.TrimSpace(row[1])
	lonStr := strings.TrimSpace(row[2])
	if latStr == "" || lonStr == "" {
		return nil, errors.New("station coordinates are missing")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude: %w", err)
	}

	return &model.Station{
		ID:        strings.TrimSpace(row[0]),
		Name:      strings.TrimSpace(row[5]),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// parseInventory reads fixed-width inventory lines: id [0:11], element [31:35],
// first year [36:40], last year [41:45]. Ranges of TMIN and TMAX are merged per station.
func parseInventory(r io.Reader) (map[string]model.InventoryRange, error) {
	fileScanner := bufio.NewScanner(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	fileScanner.Split(bufio.ScanLines)

	inventory := make(map[string]model.InventoryRange)
	for fileScanner.Scan() {
		line := fileScanner.Text()
		if len(line) < inventoryMinLength {
			continue
		}

		element := model.Element(strings.TrimSpace(line[31:35]))
		if element != model.ElementTMIN && element != model.ElementTMAX {
			continue
		}

		firstYear, err := strconv.Atoi(strings.TrimSpace(line[36:40]))
		if err != nil {
			continue
		}
		lastYear, err := strconv.Atoi(strings.TrimSpace(line[41:45]))
		if err != nil {
			continue
		}

		id := strings.TrimSpace(line[0:11])

		inv, ok := inventory[id]
		if !ok {
			inventory[id] = model.InventoryRange{StartYear: firstYear, EndYear: lastYear}
			continue
		}

		if firstYear < inv.StartYear {
			inv.StartYear = firstYear
		}
		if lastYear > inv.EndYear {
			inv.EndYear = lastYear
		}
		inventory[id] = inv
	}

	if err := fileScanner.Err(); err != nil {
		return nil, err
	}

	return inventory, nil
}
