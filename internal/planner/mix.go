package planner

import "platecore/pkg/plate"

// mixRow converts a target's placed-reaction count into reagent volumes.
// Overage scales volumes only, never well count.
func mixRow(target plate.Target, placedReactions int, overagePercent float64) (plate.MixRow, error) {
	profile, ok := target.Chemistry.Profile()
	if !ok {
		return plate.MixRow{}, plate.UnknownChemistryError{Target: target.Name, Chemistry: string(target.Chemistry)}
	}

	factor := 1.0 + overagePercent/100.0
	equivalent := float64(placedReactions) * factor

	volumes := make(map[string]float64, len(profile))
	for _, reagent := range profile {
		volumes[reagent.Name] = reagent.PerReaction * equivalent
	}

	return plate.MixRow{
		Target:                 target.Name,
		Chemistry:              target.Chemistry,
		PlacedReactions:        placedReactions,
		MixFactor:              factor,
		MixEquivalentReactions: equivalent,
		Volumes:                volumes,
	}, nil
}
