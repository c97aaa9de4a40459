// Package planner implements the plate planning pipeline: target
// sequencing, section building, well placement, reagent-mix math, and
// per-plate summaries. The whole pipeline is a pure function of one
// request; nothing is retained between calls.
package planner

import "platecore/pkg/plate"

// ReferenceGene is the reserved target name that can be isolated onto its
// own plates. Matching is case-insensitive.
const ReferenceGene = "Gapdh"

// Request carries one complete planning call. Field wire names follow the
// established client contract.
type Request struct {
	NumSamples       int            `json:"num_samples"`
	NumStandards     int            `json:"num_standards"`
	NumPositives     int            `json:"num_pos"`
	Replicates       int            `json:"replicates"`
	OveragePercent   float64        `json:"overage_pct"`
	IsolateReference bool           `json:"place_gapdh_separate"`
	IncludeRTNeg     bool           `json:"include_rtneg"`
	IncludeRNANeg    bool           `json:"include_rnaneg"`
	UsePastedSamples bool           `json:"use_pasted_samples"`
	PastedSamples    []string       `json:"pasted_samples"`
	Targets          []plate.Target `json:"genes"`
	PlateOverrides   map[string]int `json:"gene_plate_overrides"`
}

// Result is the planning output plus an echo of the request that produced
// it, so downstream renderers never need a second source of truth.
type Result struct {
	plate.PlanResult
	Inputs Request `json:"inputs"`
}

// section is one ordered run of labels sharing a type tag within a
// target's block.
type section struct {
	Type   plate.SectionType
	Labels []string
}
