package planner

import (
	"fmt"

	"platecore/internal/samples"
	"platecore/pkg/plate"
)

// Plan runs the full pipeline for one request: resolve samples, sequence
// targets, place every label-replicate, compute reagent mixes and plate
// summaries. It either returns a complete result or fails with one of the
// typed errors in pkg/plate; there are no partial results.
func Plan(req Request) (Result, error) {
	if req.Replicates < 1 || plate.ColumnCount/req.Replicates < 1 {
		return Result{}, plate.InvalidReplicatesError{Replicates: req.Replicates}
	}

	sampleList, headers, err := resolveSamples(req)
	if err != nil {
		return Result{}, err
	}
	sampleLabels := make([]string, len(sampleList))
	annotations := make(map[string]plate.Sample, len(sampleList))
	for i, s := range sampleList {
		sampleLabels[i] = s.Label
		annotations[s.Label] = s
	}

	groups, err := sequenceTargets(req.Targets, req.IsolateReference)
	if err != nil {
		return Result{}, err
	}
	for _, group := range groups {
		for _, t := range group {
			if _, ok := t.Chemistry.Profile(); !ok {
				return Result{}, plate.UnknownChemistryError{Target: t.Name, Chemistry: string(t.Chemistry)}
			}
		}
	}

	var (
		layout []plate.PlacementRecord
		mix    []plate.MixRow
		plates = make(map[string][]plate.PlacementRecord)
		cur    plateCursor
	)

	for _, group := range groups {
		// Each group opens a fresh plate; the plate counter carries over.
		cur.row = 0
		cur.fresh = true

		for _, target := range group {
			sections := buildSections(sampleLabels, req.NumStandards, req.NumPositives, req.IncludeRTNeg, req.IncludeRNANeg)

			next, placed, err := placeTarget(cur, target, sections, req, annotations, len(headers))
			if err != nil {
				return Result{}, err
			}
			cur = next

			layout = append(layout, placed.Records...)
			for _, rec := range placed.Records {
				plates[rec.Plate] = append(plates[rec.Plate], rec)
			}

			row, err := mixRow(target, placed.Reactions, req.OveragePercent)
			if err != nil {
				return Result{}, err
			}
			mix = append(mix, row)
		}
	}

	return Result{
		PlanResult: plate.PlanResult{
			Layout:        layout,
			Mix:           mix,
			Plates:        plates,
			Summary:       summarize(plates),
			SampleHeaders: headers,
		},
		Inputs: req,
	}, nil
}

// resolveSamples produces the ordered sample list for the request: either
// the parsed pasted lines or generated labels S1..Sn.
func resolveSamples(req Request) ([]plate.Sample, []string, error) {
	if req.UsePastedSamples {
		parsed, headers := samples.Parse(req.PastedSamples)
		if len(parsed) == 0 {
			return nil, nil, plate.EmptySampleListError{}
		}
		return parsed, headers, nil
	}
	generated := make([]plate.Sample, 0, req.NumSamples)
	for i := 1; i <= req.NumSamples; i++ {
		generated = append(generated, plate.Sample{Label: fmt.Sprintf("S%d", i)})
	}
	return generated, nil, nil
}
