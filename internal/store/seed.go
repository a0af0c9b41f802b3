package store

import (
	"box-shipping-service/internal/domain"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

type seedBox struct {
	ReceiverName string  `json:"receiver_name"`
	Weight       float64 `json:"weight"`
	BoxColor     string  `json:"box_color"`
	Country      string  `json:"country"`
}

// SeedFromJSON loads demo records from a JSON file into the store via
// the Load action. Entries that fail validation are skipped with a
// diagnostic rather than aborting the whole seed.
func SeedFromJSON(s *Store, seedPath string) error {
	data, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("seed store: read %q: %w", seedPath, err)
	}

	var seeds []seedBox
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("seed store: parse %q: %w", seedPath, err)
	}

	now := time.Now().UTC()
	boxes := make([]domain.Box, 0, len(seeds))
	for i, sb := range seeds {
		candidate := domain.Candidate{
			ReceiverName: sb.ReceiverName,
			Weight:       fmt.Sprintf("%g", sb.Weight),
			BoxColor:     sb.BoxColor,
			Country:      sb.Country,
		}

		if v := domain.Validate(candidate); !v.IsValid() {
			log.Printf("seed: skipping entry %d: invalid fields %v", i, v.Errors)
			continue
		}

		box, err := domain.NewBox(candidate, now)
		if err != nil {
			log.Printf("seed: skipping entry %d: %v", i, err)
			continue
		}
		boxes = append(boxes, box)
	}

	s.Load(boxes)
	log.Printf("seed: loaded %d of %d entries from %s", len(boxes), len(seeds), seedPath)
	return nil
}
