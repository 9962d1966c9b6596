package slot

// Slot is the availability of one time-of-day label on one date.
type Slot struct {
	Time   string `json:"time"`
	Booked int    `json:"booked"`
	Free   int    `json:"free"`
}

// Compute returns one Slot per catalog label in catalog order.
// Labels missing from counts are treated as unbooked; Free never drops below zero.
func Compute(catalog Catalog, capacity int, counts map[string]int) []Slot {
	if capacity < 0 {
		capacity = 0
	}

	slots := make([]Slot, 0, catalog.Len())
	for _, label := range catalog.labels {
		booked := counts[label]
		free := capacity - booked
		if free < 0 {
			free = 0
		}
		slots = append(slots, Slot{
			Time:   label,
			Booked: booked,
			Free:   free,
		})
	}
	return slots
}
