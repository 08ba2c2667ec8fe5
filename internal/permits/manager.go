package permits

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mobilefood.datasf.org/internal/models"
	"mobilefood.datasf.org/internal/utils"
)

// NearestResultLimit caps how many rows a nearest search returns.
const NearestResultLimit = 5

// approvedStatus is the default status filter applied to nearest searches.
const approvedStatus = "approved"

// Config holds the configuration settings for the permit dataset.
type Config struct {
	// DatasetPath points at the permit table, either a .csv or .xlsx export.
	DatasetPath string
}

// Manager holds the permit dataset and answers queries against it. Both views
// are built once at startup and never mutated afterward, so the manager is
// safe for unsynchronized concurrent reads.
type Manager struct {
	source    string
	allRows   []models.Row
	coordRows []models.Row
	loadedAt  time.Time
}

// InitManager loads the permit dataset from the configured path. Any load
// failure is returned to the caller; the service must not start serving
// without a fully loaded dataset.
func InitManager(config Config) (*Manager, error) {
	rows, err := loadTable(config.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("loading permit dataset: %w", err)
	}
	return newManager(config.DatasetPath, rows), nil
}

// NewManagerFromRows builds a manager directly from normalized rows. Intended
// for tests that substitute fixtures for the on-disk dataset.
func NewManagerFromRows(rows []models.Row) *Manager {
	return newManager("fixture", rows)
}

func newManager(source string, rows []models.Row) *Manager {
	manager := &Manager{
		source:   source,
		allRows:  rows,
		loadedAt: time.Now(),
	}
	for _, row := range rows {
		if hasUsableCoordinates(row) {
			manager.coordRows = append(manager.coordRows, row)
		}
	}
	return manager
}

// hasUsableCoordinates reports whether a row should participate in nearest
// searches. An exact 0 latitude or longitude is the dataset's sentinel for a
// missing location, not a real coordinate.
func hasUsableCoordinates(row models.Row) bool {
	lat, ok := row.Latitude()
	if !ok || lat == 0 {
		return false
	}
	lon, ok := row.Longitude()
	if !ok || lon == 0 {
		return false
	}
	return true
}

// AllRows returns every loaded row in source order.
func (manager *Manager) AllRows() []models.Row {
	return manager.allRows
}

// CoordRows returns the rows with usable coordinates, in source order.
func (manager *Manager) CoordRows() []models.Row {
	return manager.coordRows
}

// Source returns where the dataset was loaded from.
func (manager *Manager) Source() string {
	return manager.source
}

// LoadedAt returns when the dataset snapshot was built.
func (manager *Manager) LoadedAt() time.Time {
	return manager.loadedAt
}

// SearchByApplicant returns rows whose Applicant field contains name,
// case-insensitively. A non-empty status narrows matches to rows whose Status
// equals it exactly, also case-insensitively. Rows come back in source order.
func (manager *Manager) SearchByApplicant(name, status string) []models.Row {
	name = strings.ToLower(name)
	status = strings.ToLower(status)

	var results []models.Row
	for _, row := range manager.allRows {
		if !strings.Contains(strings.ToLower(row.Applicant()), name) {
			continue
		}
		if status != "" && strings.ToLower(row.Status()) != status {
			continue
		}
		results = append(results, row)
	}
	return results
}

// SearchByStreet returns rows whose Address field contains street,
// case-insensitively, in source order.
func (manager *Manager) SearchByStreet(street string) []models.Row {
	street = strings.ToLower(street)

	var results []models.Row
	for _, row := range manager.allRows {
		if strings.Contains(strings.ToLower(row.Address()), street) {
			results = append(results, row)
		}
	}
	return results
}

type rowWithDistance struct {
	row      models.Row
	distance float64
}

// Nearest returns up to NearestResultLimit rows with usable coordinates,
// ordered by great-circle distance from the given point. Distance ties keep
// source order. Unless allStatuses is set, only approved permits are
// considered.
func (manager *Manager) Nearest(lat, lon float64, allStatuses bool) []models.Row {
	var candidates []rowWithDistance
	for _, row := range manager.coordRows {
		if !allStatuses && strings.ToLower(row.Status()) != approvedStatus {
			continue
		}

		rowLat, _ := row.Latitude()
		rowLon, _ := row.Longitude()
		candidates = append(candidates, rowWithDistance{
			row:      row,
			distance: utils.Haversine(lat, lon, rowLat, rowLon),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > NearestResultLimit {
		candidates = candidates[:NearestResultLimit]
	}

	results := make([]models.Row, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, candidate.row)
	}
	return results
}
