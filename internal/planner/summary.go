package planner

import (
	"sort"

	"platecore/pkg/plate"
)

// summarize groups placement records per plate and counts used and empty
// wells. Plates are ordered by their numeric suffix.
func summarize(plates map[string][]plate.PlacementRecord) []plate.PlateSummary {
	out := make([]plate.PlateSummary, 0, len(plates))
	for id, records := range plates {
		out = append(out, plate.PlateSummary{
			Plate: id,
			Used:  len(records),
			Empty: plate.WellsPerPlate - len(records),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return plate.PlateNumber(out[i].Plate) < plate.PlateNumber(out[j].Plate)
	})
	return out
}
