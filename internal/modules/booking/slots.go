package booking

import "time"

const timeLayout = "15:04"

// slotGrid generates the candidate start labels for one day: every
// openTime + k*stepMinutes while strictly before closeTime, zero-padded
// "HH:MM". Closing time itself is never an offered start. An open time at
// or after close yields an empty grid.
func slotGrid(openTime, closeTime string, stepMinutes int) ([]string, error) {
	open, err := time.Parse(timeLayout, openTime)
	if err != nil {
		return nil, err
	}
	close, err := time.Parse(timeLayout, closeTime)
	if err != nil {
		return nil, err
	}

	grid := make([]string, 0)
	if stepMinutes <= 0 {
		return grid, nil
	}

	step := time.Duration(stepMinutes) * time.Minute
	for t := open; t.Before(close); t = t.Add(step) {
		grid = append(grid, t.Format(timeLayout))
	}
	return grid, nil
}

// freeSlots removes occupied labels from the grid, preserving order.
// Collision is an exact-label match; interval overlap with longer services
// is deliberately not considered here.
func freeSlots(grid []string, occupied []string) []string {
	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(grid))
	for _, t := range grid {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}
	return free
}
