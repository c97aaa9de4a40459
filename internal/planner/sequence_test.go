package planner

import (
	"testing"

	"platecore/pkg/plate"
)

func TestSequenceTargetsTrimsAndOrders(t *testing.T) {
	groups, err := sequenceTargets([]plate.Target{
		{Name: "  Tnf ", Chemistry: plate.ChemistrySYBR},
		{Name: "", Chemistry: plate.ChemistrySYBR},
		{Name: "Il6", Chemistry: plate.ChemistryTaqMan},
	}, false)
	if err != nil {
		t.Fatalf("sequenceTargets: %v", err)
	}
	if len(groups) != 1 || len(groups[0]) != 2 {
		t.Fatalf("unexpected grouping %v", groups)
	}
	if groups[0][0].Name != "Tnf" || groups[0][1].Name != "Il6" {
		t.Fatalf("unexpected order %v", groups[0])
	}
}

func TestSequenceTargetsIsolation(t *testing.T) {
	groups, err := sequenceTargets([]plate.Target{
		{Name: "GAPDH", Chemistry: plate.ChemistrySYBR},
		{Name: "Tnf", Chemistry: plate.ChemistrySYBR},
	}, true)
	if err != nil {
		t.Fatalf("sequenceTargets: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected two groups, got %d", len(groups))
	}
	if groups[0][0].Name != "Tnf" {
		t.Fatalf("first group %v, want the non-reference targets", groups[0])
	}
	if groups[1][0].Name != "GAPDH" {
		t.Fatalf("second group %v, want the reference targets", groups[1])
	}
}

func TestSequenceTargetsIsolationDisabledKeepsOrder(t *testing.T) {
	groups, err := sequenceTargets([]plate.Target{
		{Name: "Gapdh", Chemistry: plate.ChemistrySYBR},
		{Name: "Tnf", Chemistry: plate.ChemistrySYBR},
	}, false)
	if err != nil {
		t.Fatalf("sequenceTargets: %v", err)
	}
	if len(groups) != 1 || groups[0][0].Name != "Gapdh" {
		t.Fatalf("unexpected grouping %v", groups)
	}
}

func TestBuildSectionsOrderAndOmissions(t *testing.T) {
	sections := buildSections([]string{"S1", "S2"}, 1, 0, false, true)
	wantTypes := []plate.SectionType{plate.SectionSample, plate.SectionStandard, plate.SectionNegative, plate.SectionBlank}
	if len(sections) != len(wantTypes) {
		t.Fatalf("got %d sections, want %d", len(sections), len(wantTypes))
	}
	for i, want := range wantTypes {
		if sections[i].Type != want {
			t.Fatalf("section %d is %s, want %s", i, sections[i].Type, want)
		}
	}
	if sections[2].Labels[0] != "RNA−" {
		t.Fatalf("negative section holds %v, want RNA−", sections[2].Labels)
	}
	if got := totalLabels(sections); got != 5 {
		t.Fatalf("totalLabels = %d, want 5", got)
	}
}

func TestMixRowTaqManProbe(t *testing.T) {
	row, err := mixRow(plate.Target{Name: "Il6", Chemistry: plate.ChemistryTaqMan}, 10, 0)
	if err != nil {
		t.Fatalf("mixRow: %v", err)
	}
	if !closeTo(row.Volumes[plate.ReagentProbe], 3.0) {
		t.Fatalf("probe volume = %v, want 3.0", row.Volumes[plate.ReagentProbe])
	}
	if !closeTo(row.Volumes[plate.ReagentWater], 46.0) {
		t.Fatalf("water volume = %v, want 46.0", row.Volumes[plate.ReagentWater])
	}
	if !closeTo(row.MixFactor, 1.0) {
		t.Fatalf("mix factor = %v, want 1.0", row.MixFactor)
	}
}

func TestSummarizeOrdersNumerically(t *testing.T) {
	plates := map[string][]plate.PlacementRecord{
		"Plate 10": make([]plate.PlacementRecord, 4),
		"Plate 2":  make([]plate.PlacementRecord, 8),
	}
	summary := summarize(plates)
	if summary[0].Plate != "Plate 2" || summary[1].Plate != "Plate 10" {
		t.Fatalf("unexpected order %v", summary)
	}
	if summary[0].Used != 8 || summary[0].Empty != plate.WellsPerPlate-8 {
		t.Fatalf("unexpected counts %+v", summary[0])
	}
}
