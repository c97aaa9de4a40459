// Package samples converts free-text pasted sample lines into an ordered,
// de-duplicated sample list with optional extra annotation columns. The
// planning core assumes labels arriving from here are unique and non-empty.
package samples

import (
	"fmt"
	"regexp"
	"strings"

	"platecore/pkg/plate"
)

// compactPattern unpacks shorthand lines like "321Maletnfoldage" where the
// annotation columns were typed without separators.
var compactPattern = regexp.MustCompile(`(?i)^(?P<label>[A-Za-z0-9]+)(?P<sex>male|female)(?P<treatment>tnf|saline)(?P<age>middleage|oldage)$`)

var separators = regexp.MustCompile(`[\t,]+`)

// Parse converts pasted lines into ordered samples plus the header names
// for the extra columns. Comment lines (leading '#') and blank lines are
// skipped; repeated labels keep their first occurrence. A single extra
// column keeps the legacy header name "Group", wider rows get "Extra N".
func Parse(lines []string) ([]plate.Sample, []string) {
	var out []plate.Sample
	seen := make(map[string]struct{})
	maxExtras := 0

	for _, raw := range lines {
		parts := splitLine(raw)
		if len(parts) == 0 {
			continue
		}
		label, extras := parts[0], parts[1:]
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		sample := plate.Sample{Label: label}
		if len(extras) > 0 {
			sample.Group = extras[0]
			sample.Extras = extras
		}
		out = append(out, sample)
		if len(extras) > maxExtras {
			maxExtras = len(extras)
		}
	}

	return out, headersFor(maxExtras)
}

func headersFor(maxExtras int) []string {
	switch maxExtras {
	case 0:
		return nil
	case 1:
		return []string{"Group"}
	}
	headers := make([]string, maxExtras)
	for i := range headers {
		headers[i] = fmt.Sprintf("Extra %d", i+1)
	}
	return headers
}

// splitLine tokenizes one pasted line. Tabs or commas keep intra-value
// spaces intact; compact shorthand is unpacked via regex; otherwise the
// line is whitespace-split with "old age"/"middle age" re-joined.
func splitLine(raw string) []string {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	if strings.ContainsAny(line, "\t,") {
		var parts []string
		for _, p := range separators.Split(line, -1) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		return parts
	}

	// Compact case: drop internal spaces so "tnfold age" still matches.
	compact := strings.Join(strings.Fields(line), "")
	if m := compactPattern.FindStringSubmatch(compact); m != nil {
		age := "old age"
		if strings.Contains(strings.ToLower(m[4]), "middle") {
			age = "middle age"
		}
		return []string{m[1], capitalize(m[2]), strings.ToLower(m[3]), age}
	}

	parts := strings.Fields(line)
	if n := len(parts); n >= 2 && strings.EqualFold(parts[n-1], "age") {
		switch strings.ToLower(parts[n-2]) {
		case "old", "middle":
			joined := parts[n-2] + " " + parts[n-1]
			parts = append(parts[:n-2], joined)
		}
	}
	return parts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
