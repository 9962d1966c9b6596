package slot

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyCatalog   = errors.New("time slot catalog is empty")
	ErrInvalidLabel   = errors.New("time slot label must be HH:MM")
	ErrDuplicateLabel = errors.New("duplicate time slot label")
)

const labelLayout = "15:04"

// Catalog is the fixed, ordered enumeration of bookable time-of-day labels.
type Catalog struct {
	labels []string
	index  map[string]int
}

func NewCatalog(labels []string) (Catalog, error) {
	if len(labels) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	ordered := make([]string, 0, len(labels))
	index := make(map[string]int, len(labels))
	for _, raw := range labels {
		label := strings.TrimSpace(raw)
		if _, err := time.Parse(labelLayout, label); err != nil || len(label) != len(labelLayout) {
			return Catalog{}, ErrInvalidLabel
		}
		if _, ok := index[label]; ok {
			return Catalog{}, ErrDuplicateLabel
		}
		index[label] = len(ordered)
		ordered = append(ordered, label)
	}

	return Catalog{labels: ordered, index: index}, nil
}

func (c Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

func (c Catalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

func (c Catalog) Len() int {
	return len(c.labels)
}

// Matches reports whether slots has exactly one entry per label, in catalog order.
func (c Catalog) Matches(slots []Slot) bool {
	if len(slots) != len(c.labels) {
		return false
	}
	for i, s := range slots {
		if s.Time != c.labels[i] {
			return false
		}
	}
	return true
}
