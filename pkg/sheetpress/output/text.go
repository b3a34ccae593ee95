// Package output serializes encodings to the canonical text form and JSON.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// textHeader identifies the canonical text form.
const textHeader = "# sheetpress/v1"

// Encode renders the encoding in the canonical text form: a header with the
// grid extent and anchors, the anchor-reduced layout with omission markers,
// the inverted value index and the format region list. Row and span indices
// are zero-based grid indices; cell references and ranges are standard A1
// notation. The output is byte-deterministic and Parse inverts it exactly.
func Encode(e *models.Encoding) []byte {
	var b strings.Builder
	b.WriteString(textHeader + "\n")
	if e.Sheet != "" {
		fmt.Fprintf(&b, "sheet: %s\n", strconv.Quote(e.Sheet))
	}
	fmt.Fprintf(&b, "size: %dx%d\n", e.Rows, e.Cols)
	if len(e.AnchorRows) > 0 {
		fmt.Fprintf(&b, "anchor rows: %s\n", joinInts(e.AnchorRows))
	}
	if len(e.AnchorCols) > 0 {
		fmt.Fprintf(&b, "anchor cols: %s\n", joinInts(e.AnchorCols))
	}

	b.WriteString("\n## layout\n")
	for _, s := range e.OmittedCols {
		fmt.Fprintf(&b, "[cols %d-%d omitted]\n", s.Start, s.End)
	}
	ri, si := 0, 0
	for ri < len(e.Layout) || si < len(e.OmittedRows) {
		if si < len(e.OmittedRows) && (ri >= len(e.Layout) || e.OmittedRows[si].Start < e.Layout[ri].Row) {
			s := e.OmittedRows[si]
			fmt.Fprintf(&b, "[rows %d-%d omitted]\n", s.Start, s.End)
			si++
			continue
		}
		writeRow(&b, e.Layout[ri])
		ri++
	}

	b.WriteString("\n## index\n")
	for _, ent := range e.Index {
		fmt.Fprintf(&b, "%s: %s\n", strconv.Quote(ent.Value), joinRanges(ent.Ranges))
	}

	b.WriteString("\n## regions\n")
	for _, reg := range e.Regions {
		fmt.Fprintf(&b, "%s %s %s\n", reg.Type, reg.Range, strconv.Quote(reg.Format))
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, row models.LayoutRow) {
	fmt.Fprintf(b, "row %d:", row.Row)
	for _, cell := range row.Cells {
		ref, _ := excelize.CoordinatesToCellName(cell.Col+1, row.Row+1)
		fmt.Fprintf(b, " %s=%s", ref, strconv.Quote(cell.Value))
	}
	b.WriteString("\n")
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinRanges(ranges []models.AddressRange) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Parse reads the canonical text form back into an Encoding. It is the
// inverse of Encode and exists so the serialized output stays unambiguous.
func Parse(data []byte) (*models.Encoding, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || lines[0] != textHeader {
		return nil, fmt.Errorf("missing %q header", textHeader)
	}

	e := &models.Encoding{}
	section := ""
	sawSize := false
	for i, line := range lines[1:] {
		lineNo := i + 2
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "## ") {
			section = strings.TrimPrefix(line, "## ")
			continue
		}
		var err error
		switch section {
		case "":
			err = parseHeaderLine(e, line, &sawSize)
		case "layout":
			err = parseLayoutLine(e, line)
		case "index":
			err = parseIndexLine(e, line)
		case "regions":
			err = parseRegionLine(e, line)
		default:
			err = fmt.Errorf("unknown section %q", section)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if !sawSize {
		return nil, fmt.Errorf("missing size line")
	}
	return e, nil
}

func parseHeaderLine(e *models.Encoding, line string, sawSize *bool) error {
	key, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return fmt.Errorf("malformed header line %q", line)
	}
	switch key {
	case "sheet":
		name, err := strconv.Unquote(rest)
		if err != nil {
			return fmt.Errorf("malformed sheet name %q", rest)
		}
		e.Sheet = name
	case "size":
		if _, err := fmt.Sscanf(rest, "%dx%d", &e.Rows, &e.Cols); err != nil {
			return fmt.Errorf("malformed size %q", rest)
		}
		*sawSize = true
	case "anchor rows":
		vals, err := splitInts(rest)
		if err != nil {
			return err
		}
		e.AnchorRows = vals
	case "anchor cols":
		vals, err := splitInts(rest)
		if err != nil {
			return err
		}
		e.AnchorCols = vals
	default:
		return fmt.Errorf("unknown header key %q", key)
	}
	return nil
}

func parseLayoutLine(e *models.Encoding, line string) error {
	var start, end int
	if _, err := fmt.Sscanf(line, "[rows %d-%d omitted]", &start, &end); err == nil {
		e.OmittedRows = append(e.OmittedRows, models.Span{Start: start, End: end})
		return nil
	}
	if _, err := fmt.Sscanf(line, "[cols %d-%d omitted]", &start, &end); err == nil {
		e.OmittedCols = append(e.OmittedCols, models.Span{Start: start, End: end})
		return nil
	}
	rest, ok := strings.CutPrefix(line, "row ")
	if !ok {
		return fmt.Errorf("malformed layout line %q", line)
	}
	num, rest, ok := strings.Cut(rest, ":")
	if !ok {
		return fmt.Errorf("malformed layout line %q", line)
	}
	rowIdx, err := strconv.Atoi(num)
	if err != nil {
		return fmt.Errorf("malformed row index %q", num)
	}
	cells, err := parseCells(rest)
	if err != nil {
		return err
	}
	e.Layout = append(e.Layout, models.LayoutRow{Row: rowIdx, Cells: cells})
	return nil
}

func parseCells(s string) ([]models.LayoutCell, error) {
	var cells []models.LayoutCell
	for {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return cells, nil
		}
		ref, rest, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("malformed cell token %q", s)
		}
		col, _, err := excelize.CellNameToCoordinates(ref)
		if err != nil {
			return nil, fmt.Errorf("malformed cell reference %q", ref)
		}
		quoted, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return nil, fmt.Errorf("malformed cell value in %q", rest)
		}
		value, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, fmt.Errorf("malformed cell value %q", quoted)
		}
		cells = append(cells, models.LayoutCell{Col: col - 1, Value: value})
		s = rest[len(quoted):]
	}
}

func parseIndexLine(e *models.Encoding, line string) error {
	quoted, err := strconv.QuotedPrefix(line)
	if err != nil {
		return fmt.Errorf("malformed index line %q", line)
	}
	value, err := strconv.Unquote(quoted)
	if err != nil {
		return fmt.Errorf("malformed index value %q", quoted)
	}
	rest, ok := strings.CutPrefix(line[len(quoted):], ": ")
	if !ok {
		return fmt.Errorf("malformed index line %q", line)
	}
	var ranges []models.AddressRange
	for _, part := range strings.Split(rest, ",") {
		r, err := models.ParseRange(part)
		if err != nil {
			return err
		}
		ranges = append(ranges, r)
	}
	e.Index = append(e.Index, models.IndexEntry{Value: value, Ranges: ranges})
	return nil
}

func parseRegionLine(e *models.Encoding, line string) error {
	typeName, rest, ok := strings.Cut(line, " ")
	if !ok {
		return fmt.Errorf("malformed region line %q", line)
	}
	t := models.DataType(typeName)
	if !t.Valid() {
		return fmt.Errorf("unknown data type %q", typeName)
	}
	rangeStr, rest, ok := strings.Cut(rest, " ")
	if !ok {
		return fmt.Errorf("malformed region line %q", line)
	}
	r, err := models.ParseRange(rangeStr)
	if err != nil {
		return err
	}
	format, err := strconv.Unquote(rest)
	if err != nil {
		return fmt.Errorf("malformed region format %q", rest)
	}
	e.Regions = append(e.Regions, models.FormatRegion{Type: t, Range: r, Format: format})
	return nil
}

func splitInts(s string) ([]int, error) {
	var vals []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("malformed index list %q", s)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
