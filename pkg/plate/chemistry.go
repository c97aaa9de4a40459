package plate

// Chemistry identifies a reagent recipe with fixed per-reaction volumes.
// The set is closed: lookups for anything else fail with
// UnknownChemistryError instead of defaulting.
type Chemistry string

// Supported chemistry keys.
const (
	// ChemistrySYBR is the intercalating-dye recipe (no probe).
	ChemistrySYBR Chemistry = "SYBR"
	// ChemistryTaqMan is the hydrolysis-probe recipe.
	ChemistryTaqMan Chemistry = "TaqMan"
)

// Reagent pairs a display name with its per-reaction volume in µL.
type Reagent struct {
	Name        string  `json:"name"`
	PerReaction float64 `json:"per_reaction_ul"`
}

// Reagent display names shared by every chemistry. Profiles list them in
// this order so tabular renderings stay column-stable.
const (
	ReagentMasterMix = "2X master mix"
	ReagentWater     = "RNAse-free H2O"
	ReagentProbe     = "10 µM probe"
	ReagentForward   = "10 µM Forward"
	ReagentReverse   = "10 µM Reverse"
)

// ReagentNames returns the fixed reagent column order.
func ReagentNames() []string {
	return []string{ReagentMasterMix, ReagentWater, ReagentProbe, ReagentForward, ReagentReverse}
}

var profiles = map[Chemistry][]Reagent{
	ChemistrySYBR: {
		{Name: ReagentMasterMix, PerReaction: 7.5},
		{Name: ReagentWater, PerReaction: 4.9},
		{Name: ReagentProbe, PerReaction: 0.0},
		{Name: ReagentForward, PerReaction: 0.3},
		{Name: ReagentReverse, PerReaction: 0.3},
	},
	ChemistryTaqMan: {
		{Name: ReagentMasterMix, PerReaction: 7.5},
		{Name: ReagentWater, PerReaction: 4.6},
		{Name: ReagentProbe, PerReaction: 0.3},
		{Name: ReagentForward, PerReaction: 0.3},
		{Name: ReagentReverse, PerReaction: 0.3},
	},
}

// Profile returns the ordered reagent recipe for the chemistry.
func (c Chemistry) Profile() ([]Reagent, bool) {
	p, ok := profiles[c]
	if !ok {
		return nil, false
	}
	out := make([]Reagent, len(p))
	copy(out, p)
	return out, true
}

// Chemistries lists the supported keys in a stable order.
func Chemistries() []Chemistry {
	return []Chemistry{ChemistrySYBR, ChemistryTaqMan}
}
