package plate

import (
	"encoding/json"
	"fmt"
)

//go:generate go tool stringer -type=SectionType -trimprefix=Section -output=sectiontype_string.go

// SectionType tags the group a label belongs to inside a target's block.
type SectionType int

// Section placement order is fixed: samples first, blank last.
const (
	SectionSample SectionType = iota
	SectionStandard
	SectionPositive
	SectionNegative
	SectionBlank
)

// MarshalJSON renders the section tag as its display name.
func (t SectionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a section display name.
func (t *SectionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for candidate := SectionSample; candidate <= SectionBlank; candidate++ {
		if candidate.String() == s {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown section type %q", s)
}

// Target is an assay probe/gene to be placed as one contiguous block.
type Target struct {
	Name      string    `json:"name"`
	Chemistry Chemistry `json:"chemistry"`
}

// Sample is one assay sample label with optional extra annotation columns
// carried through from the pasted input.
type Sample struct {
	Label  string   `json:"label"`
	Group  string   `json:"group,omitempty"`
	Extras []string `json:"extras,omitempty"`
}

// PlacementRecord assigns one replicate of one label to a concrete well.
// Group and Extras are populated for Sample records only.
type PlacementRecord struct {
	Plate     string      `json:"plate"`
	Well      string      `json:"well"`
	Target    string      `json:"target"`
	Section   SectionType `json:"type"`
	Label     string      `json:"label"`
	Replicate int         `json:"replicate"`
	Group     string      `json:"group,omitempty"`
	Extras    []string    `json:"extras,omitempty"`
}

// MixRow holds the reagent-mix math for one target. Volumes is keyed by
// reagent display name; ReagentNames gives the stable column order.
type MixRow struct {
	Target                 string             `json:"target"`
	Chemistry              Chemistry          `json:"chemistry"`
	PlacedReactions        int                `json:"placed_reactions"`
	MixFactor              float64            `json:"mix_factor"`
	MixEquivalentReactions float64            `json:"mix_equiv_rxn"`
	Volumes                map[string]float64 `json:"volumes"`
}

// PlateSummary counts used and empty wells on one plate.
type PlateSummary struct {
	Plate string `json:"plate"`
	Used  int    `json:"used"`
	Empty int    `json:"empty"`
}

// PlanResult is the complete read-only output of one planning call.
type PlanResult struct {
	Layout        []PlacementRecord            `json:"layout"`
	Mix           []MixRow                     `json:"mix"`
	Plates        map[string][]PlacementRecord `json:"plates"`
	Summary       []PlateSummary               `json:"summary"`
	SampleHeaders []string                     `json:"sample_headers"`
}
