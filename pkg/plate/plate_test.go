package plate

import (
	"encoding/json"
	"math"
	"testing"
)

func TestWellID(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{0, 23, "A24"},
		{15, 0, "P1"},
		{15, 23, "P24"},
		{7, 11, "H12"},
	}
	for _, tc := range cases {
		if got := WellID(tc.row, tc.col); got != tc.want {
			t.Fatalf("WellID(%d,%d) = %s, want %s", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestRowLetterBounds(t *testing.T) {
	if RowLetter(-1) != "" || RowLetter(RowCount) != "" {
		t.Fatalf("out-of-range rows not rejected")
	}
	if RowLetter(0) != "A" || RowLetter(15) != "P" {
		t.Fatalf("letter mapping broken")
	}
}

func TestPlateIDRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 10, 42} {
		if got := PlateNumber(PlateID(n)); got != n {
			t.Fatalf("PlateNumber(PlateID(%d)) = %d", n, got)
		}
	}
	if PlateNumber("garbage") != 0 {
		t.Fatalf("unparseable id should sort as zero")
	}
}

func TestChemistryProfiles(t *testing.T) {
	sybr, ok := ChemistrySYBR.Profile()
	if !ok {
		t.Fatalf("SYBR profile missing")
	}
	taq, ok := ChemistryTaqMan.Profile()
	if !ok {
		t.Fatalf("TaqMan profile missing")
	}
	if len(sybr) != 5 || len(taq) != 5 {
		t.Fatalf("profiles incomplete: %d / %d reagents", len(sybr), len(taq))
	}

	names := ReagentNames()
	for i := range names {
		if sybr[i].Name != names[i] || taq[i].Name != names[i] {
			t.Fatalf("reagent order diverges at %d", i)
		}
	}

	byName := func(rs []Reagent, name string) float64 {
		for _, r := range rs {
			if r.Name == name {
				return r.PerReaction
			}
		}
		t.Fatalf("reagent %s missing", name)
		return 0
	}
	if byName(sybr, ReagentProbe) != 0 {
		t.Fatalf("SYBR has probe volume")
	}
	if byName(taq, ReagentProbe) != 0.3 {
		t.Fatalf("TaqMan probe volume wrong")
	}
	// TaqMan trades 0.3 µL of water for the probe.
	if diff := byName(sybr, ReagentWater) - byName(taq, ReagentWater); math.Abs(diff-0.3) > 1e-9 {
		t.Fatalf("water volumes inconsistent: diff = %v", diff)
	}

	if _, ok := Chemistry("EvaGreen").Profile(); ok {
		t.Fatalf("unknown chemistry resolved")
	}
}

func TestChemistryProfileCopyIsIndependent(t *testing.T) {
	p1, _ := ChemistrySYBR.Profile()
	p1[0].PerReaction = 999
	p2, _ := ChemistrySYBR.Profile()
	if p2[0].PerReaction == 999 {
		t.Fatalf("profile mutation leaked into catalog")
	}
}

func TestSectionTypeJSON(t *testing.T) {
	for _, sec := range []SectionType{SectionSample, SectionStandard, SectionPositive, SectionNegative, SectionBlank} {
		raw, err := json.Marshal(sec)
		if err != nil {
			t.Fatalf("marshal %v: %v", sec, err)
		}
		var back SectionType
		if err := json.Unmarshal(raw, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if back != sec {
			t.Fatalf("round trip %v -> %s -> %v", sec, raw, back)
		}
	}
	var bad SectionType
	if err := json.Unmarshal([]byte(`"Mystery"`), &bad); err == nil {
		t.Fatalf("unknown section name accepted")
	}
}

func TestIsInputError(t *testing.T) {
	inputs := []error{
		InvalidReplicatesError{Replicates: 0},
		EmptySampleListError{},
		NoTargetsError{},
		DuplicateTargetError{Name: "Tnf"},
		UnknownChemistryError{Target: "Tnf", Chemistry: "x"},
		GeneBlockTooLargeError{Target: "Tnf", Labels: 400, Replicates: 2, Rows: 34},
	}
	for _, err := range inputs {
		if !IsInputError(err) {
			t.Fatalf("%T not classified as input error", err)
		}
	}
	if IsInputError(PlateOverflowError{Target: "Tnf"}) {
		t.Fatalf("overflow misclassified as input error")
	}
	if IsInputError(nil) {
		t.Fatalf("nil misclassified")
	}
}
