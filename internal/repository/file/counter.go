package file

import (
	"encoding/json"
	"fmt"
	"os"

	"numberhunt/internal/repository"
)

// counterRecord is the on-disk shape of the counter file
type counterRecord struct {
	CurrentNumber int `json:"current_number"`
}

// CounterRepo implements repository.CounterRepository over a single JSON file
type CounterRepo struct {
	path string
}

// NewCounterRepo creates a new counter repository
func NewCounterRepo(path string) *CounterRepo {
	return &CounterRepo{path: path}
}

// Get reads the current number from the counter file
func (r *CounterRepo) Get() (int, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrCounterUnavailable, err)
	}

	var rec counterRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrCounterUnavailable, err)
	}

	return rec.CurrentNumber, nil
}

// Set replaces the counter file with the given number
func (r *CounterRepo) Set(n int) error {
	data, err := json.Marshal(counterRecord{CurrentNumber: n})
	if err != nil {
		return fmt.Errorf("marshal counter record: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write counter file: %w", err)
	}

	return nil
}
