package planner

import (
	"strings"

	"platecore/pkg/plate"
)

// sequenceTargets validates the target list and orders it into one or more
// groups. With isolation enabled and both reference and non-reference
// targets present, non-reference targets come first and the reference
// target(s) form their own trailing group; each group later starts on a
// fresh plate. Name comparison for duplicates is case-sensitive; matching
// the reference gene is not.
func sequenceTargets(targets []plate.Target, isolate bool) ([][]plate.Target, error) {
	cleaned := make([]plate.Target, 0, len(targets))
	for _, t := range targets {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			continue
		}
		cleaned = append(cleaned, t)
	}
	if len(cleaned) == 0 {
		return nil, plate.NoTargetsError{}
	}

	seen := make(map[string]struct{}, len(cleaned))
	for _, t := range cleaned {
		if _, dup := seen[t.Name]; dup {
			return nil, plate.DuplicateTargetError{Name: t.Name}
		}
		seen[t.Name] = struct{}{}
	}

	if !isolate {
		return [][]plate.Target{cleaned}, nil
	}

	var others, reference []plate.Target
	for _, t := range cleaned {
		if strings.EqualFold(t.Name, ReferenceGene) {
			reference = append(reference, t)
		} else {
			others = append(others, t)
		}
	}
	groups := make([][]plate.Target, 0, 2)
	if len(others) > 0 {
		groups = append(groups, others)
	}
	if len(reference) > 0 {
		groups = append(groups, reference)
	}
	return groups, nil
}
