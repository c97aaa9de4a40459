// Package export renders plan results into delimited-text, spreadsheet,
// and printable-page artifacts. Renderers only read the result; they never
// mutate it.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"platecore/internal/planner"
	"platecore/pkg/plate"
)

// Format identifies a rendering of a plan result.
type Format string

const (
	// FormatJSON is the full result as JSON.
	FormatJSON Format = "json"
	// FormatCSV is the well layout as a delimited table; it doubles as
	// the spreadsheet rendering.
	FormatCSV Format = "csv"
	// FormatMixCSV is the reagent-mix table as a delimited table.
	FormatMixCSV Format = "mix_csv"
	// FormatHTML is a printable page with summary, mix, and layout tables.
	FormatHTML Format = "html"
)

// ParseFormat normalizes a client-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatMixCSV:
		return FormatMixCSV, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV, FormatMixCSV:
		return "text/csv"
	case FormatHTML:
		return "text/html"
	default:
		return "application/json"
	}
}

// Render materializes one format of the result.
func Render(f Format, res planner.Result) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.Marshal(res)
	case FormatCSV:
		return LayoutCSV(res)
	case FormatMixCSV:
		return MixCSV(res)
	case FormatHTML:
		return HTML(res), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", string(f))
	}
}

// layoutHeaders returns the layout table columns: the fixed record fields
// followed by the per-sample annotation headers.
func layoutHeaders(res planner.Result) []string {
	headers := []string{"Plate", "Well", "Target", "Type", "Label", "Replicate"}
	return append(headers, res.SampleHeaders...)
}

// LayoutCSV renders the placement records as CSV.
func LayoutCSV(res planner.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(layoutHeaders(res)); err != nil {
		return nil, err
	}
	for _, rec := range res.Layout {
		if err := w.Write(layoutRow(res, rec)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func layoutRow(res planner.Result, rec plate.PlacementRecord) []string {
	row := []string{rec.Plate, rec.Well, rec.Target, rec.Section.String(), rec.Label, strconv.Itoa(rec.Replicate)}
	for i := range res.SampleHeaders {
		if i < len(rec.Extras) {
			row = append(row, rec.Extras[i])
		} else {
			row = append(row, "")
		}
	}
	return row
}

// mixHeaders returns the reagent-mix table columns.
func mixHeaders() []string {
	headers := []string{"Target", "Chemistry", "Placed reactions", "Mix factor", "Mix-equivalent reactions"}
	return append(headers, plate.ReagentNames()...)
}

// MixCSV renders the reagent-mix table as CSV.
func MixCSV(res planner.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(mixHeaders()); err != nil {
		return nil, err
	}
	for _, row := range res.Mix {
		record := []string{
			row.Target,
			string(row.Chemistry),
			strconv.Itoa(row.PlacedReactions),
			formatFloat(row.MixFactor),
			formatFloat(row.MixEquivalentReactions),
		}
		for _, name := range plate.ReagentNames() {
			record = append(record, formatFloat(row.Volumes[name]))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HTML renders a printable page: per-plate summary, reagent-mix table,
// then the full layout table.
func HTML(res planner.Result) []byte {
	buf := &strings.Builder{}
	buf.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>Plate plan</title></head><body>")

	buf.WriteString("<h2>Plates</h2>")
	writeTable(buf, []string{"Plate", "Used", "Empty"}, func(emit func([]string)) {
		for _, s := range res.Summary {
			emit([]string{s.Plate, strconv.Itoa(s.Used), strconv.Itoa(s.Empty)})
		}
	})

	buf.WriteString("<h2>Reagent mix</h2>")
	writeTable(buf, mixHeaders(), func(emit func([]string)) {
		for _, row := range res.Mix {
			record := []string{
				row.Target,
				string(row.Chemistry),
				strconv.Itoa(row.PlacedReactions),
				formatFloat(row.MixFactor),
				formatFloat(row.MixEquivalentReactions),
			}
			for _, name := range plate.ReagentNames() {
				record = append(record, formatFloat(row.Volumes[name]))
			}
			emit(record)
		}
	})

	buf.WriteString("<h2>Layout</h2>")
	writeTable(buf, layoutHeaders(res), func(emit func([]string)) {
		for _, rec := range res.Layout {
			emit(layoutRow(res, rec))
		}
	})

	buf.WriteString("</body></html>")
	return []byte(buf.String())
}

func writeTable(buf *strings.Builder, headers []string, rows func(emit func([]string))) {
	buf.WriteString("<table><thead><tr>")
	for _, h := range headers {
		buf.WriteString("<th>")
		buf.WriteString(html.EscapeString(h))
		buf.WriteString("</th>")
	}
	buf.WriteString("</tr></thead><tbody>")
	rows(func(cells []string) {
		buf.WriteString("<tr>")
		for _, c := range cells {
			buf.WriteString("<td>")
			buf.WriteString(html.EscapeString(c))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>")
	})
	buf.WriteString("</tbody></table>")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
