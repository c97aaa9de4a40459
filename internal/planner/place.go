package planner

import "platecore/pkg/plate"

// plateCursor is the single-owner placement state threaded through the
// engine. It is passed by value and returned updated, never shared.
type plateCursor struct {
	// plate is the last allocated 1-based plate number; zero until the
	// first plate is opened.
	plate int
	// row is the next free row on the current plate.
	row int
	// fresh forces the next target to open a new plate: set before the
	// first target overall, at every group boundary, and after an
	// honored plate override.
	fresh bool
}

// placement collects the engine output for one target.
type placement struct {
	Records []plate.PlacementRecord
	// Reactions is the placed-reaction count, len(labels) × replicates.
	Reactions int
}

// blockRows returns how many plate rows the label list needs, given how
// many labels fit on one row.
func blockRows(labels, labelsPerRow int) int {
	return (labels + labelsPerRow - 1) / labelsPerRow
}

// placeTarget assigns every label-replicate of one target to concrete
// wells, honoring the plate-boundary, override, and row-alignment rules.
// Samples carry their Group/Extras annotations, padded to maxExtras.
func placeTarget(cur plateCursor, target plate.Target, sections []section, req Request,
	annotations map[string]plate.Sample, maxExtras int) (plateCursor, placement, error) {

	labelsPerRow := plate.ColumnCount / req.Replicates
	labels := totalLabels(sections)
	rowsNeeded := blockRows(labels, labelsPerRow)
	if rowsNeeded > plate.RowCount {
		return cur, placement{}, plate.GeneBlockTooLargeError{
			Target:     target.Name,
			Labels:     labels,
			Replicates: req.Replicates,
			Rows:       rowsNeeded,
		}
	}

	// Manual plate override: only ever moves forward. The target becomes
	// the first thing placed on the overridden plate.
	if override, ok := req.PlateOverrides[target.Name]; ok && override > cur.plate {
		cur.plate = override - 1
		cur.row = 0
		cur.fresh = true
	}

	// Plate boundary: open a new plate when forced, or when the block
	// would run past row P on the current plate.
	if cur.fresh || cur.row+rowsNeeded > plate.RowCount {
		cur.plate++
		cur.row = 0
		cur.fresh = false
	}

	plateID := plate.PlateID(cur.plate)
	col := 0
	records := make([]plate.PlacementRecord, 0, labels*req.Replicates)

	for _, sec := range sections {
		for _, label := range sec.Labels {
			// Replicates stay contiguous on one row: if the span would
			// cross column 24, the whole label moves down.
			if col+req.Replicates > plate.ColumnCount {
				col = 0
				cur.row++
			}
			if cur.row >= plate.RowCount {
				return cur, placement{}, plate.PlateOverflowError{Target: target.Name}
			}
			for r := 0; r < req.Replicates; r++ {
				rec := plate.PlacementRecord{
					Plate:     plateID,
					Well:      plate.WellID(cur.row, col+r),
					Target:    target.Name,
					Section:   sec.Type,
					Label:     label,
					Replicate: r + 1,
				}
				if sec.Type == plate.SectionSample {
					rec.Group = annotations[label].Group
					rec.Extras = padExtras(annotations[label].Extras, maxExtras)
				}
				records = append(records, rec)
			}
			col += req.Replicates
			if col >= plate.ColumnCount {
				col = 0
				cur.row++
			}
		}
	}

	// Post-block alignment: a partially filled row is closed out so no
	// later target reuses its leftover capacity.
	if col != 0 {
		cur.row++
	}

	return cur, placement{Records: records, Reactions: labels * req.Replicates}, nil
}

func padExtras(extras []string, width int) []string {
	if width == 0 {
		return nil
	}
	out := make([]string, width)
	copy(out, extras)
	return out
}
