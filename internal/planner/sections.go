package planner

import (
	"fmt"

	"platecore/pkg/plate"
)

// buildSections assembles the ordered label sections for one target:
// samples, standards, positives (if any), RT− and RNA− negatives (if
// enabled), then the blank. Empty sections are dropped.
func buildSections(sampleLabels []string, standards, positives int, rtNeg, rnaNeg bool) []section {
	sections := []section{
		{Type: plate.SectionSample, Labels: sampleLabels},
		{Type: plate.SectionStandard, Labels: numbered("Std", standards)},
	}
	if positives > 0 {
		sections = append(sections, section{Type: plate.SectionPositive, Labels: numbered("Pos", positives)})
	}
	if rtNeg {
		sections = append(sections, section{Type: plate.SectionNegative, Labels: []string{"RT−"}})
	}
	if rnaNeg {
		sections = append(sections, section{Type: plate.SectionNegative, Labels: []string{"RNA−"}})
	}
	sections = append(sections, section{Type: plate.SectionBlank, Labels: []string{"Blank"}})

	out := sections[:0]
	for _, s := range sections {
		labels := s.Labels[:0:0]
		for _, l := range s.Labels {
			if l != "" {
				labels = append(labels, l)
			}
		}
		if len(labels) > 0 {
			out = append(out, section{Type: s.Type, Labels: labels})
		}
	}
	return out
}

func numbered(prefix string, n int) []string {
	labels := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		labels = append(labels, fmt.Sprintf("%s%d", prefix, i))
	}
	return labels
}

func totalLabels(sections []section) int {
	total := 0
	for _, s := range sections {
		total += len(s.Labels)
	}
	return total
}
