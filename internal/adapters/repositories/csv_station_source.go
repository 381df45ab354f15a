package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fuel-route-service/internal/domain"
)

// Column headers of the OPIS fuel price export.
const (
	colID      = "OPIS Truckstop ID"
	colName    = "Truckstop Name"
	colAddress = "Address"
	colCity    = "City"
	colState   = "State"
	colPrice   = "Retail Price"
)

// CSVStationSource loads the station catalog straight from the price CSV,
// assigning deterministic coordinates as it reads. Malformed rows are skipped
// rather than failing the whole load, matching how the catalog export behaves
// in practice (stray blank prices, truncated rows).
type CSVStationSource struct {
	Path string
}

func NewCSVStationSource(path string) *CSVStationSource {
	return &CSVStationSource{Path: path}
}

// Retrieve all stations with their precomputed coordinates, in file order.
func (c *CSVStationSource) ListStations(ctx context.Context) ([]domain.Station, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("load stations: open %q: %w", c.Path, err)
	}
	defer f.Close()

	stations, err := ReadStationsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load stations: %q: %w", c.Path, err)
	}

	return stations, nil
}

// ReadStationsCSV parses the price CSV into station records.
func ReadStationsCSV(r io.Reader) ([]domain.Station, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colID, colName, colAddress, colCity, colState, colPrice} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv is missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	stations := make([]domain.Station, 0, 1024)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		id := field(row, colID)
		city := field(row, colCity)
		state := field(row, colState)
		if id == "" || city == "" || state == "" {
			continue
		}

		price, err := strconv.ParseFloat(field(row, colPrice), 64)
		if err != nil || price <= 0 {
			continue
		}

		stations = append(stations, domain.Station{
			ID:             id,
			Name:           field(row, colName),
			Address:        field(row, colAddress),
			City:           city,
			State:          state,
			PricePerGallon: price,
			Coord:          DeterministicCoordinate(city, state, id),
		})
	}

	return stations, nil
}
