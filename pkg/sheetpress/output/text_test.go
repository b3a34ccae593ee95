package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheetpress/sheetpress-go/pkg/sheetpress"
	"github.com/sheetpress/sheetpress-go/pkg/sheetpress/models"
)

// tableGrid builds a grid with a header, a long homogeneous body and a total
// row, so the encoding carries anchors, an elided span and a format region.
func tableGrid(t *testing.T) *models.Grid {
	t.Helper()
	g := models.NewGrid(12, 2)
	require.NoError(t, g.Set(0, 0, models.Cell{Value: "Quarter"}))
	require.NoError(t, g.Set(0, 1, models.Cell{Value: "Growth"}))
	for r := 1; r <= 10; r++ {
		require.NoError(t, g.Set(r, 0, models.Cell{Value: "Q1"}))
		require.NoError(t, g.Set(r, 1, models.Cell{Value: "5%", Format: "0%"}))
	}
	require.NoError(t, g.Set(11, 0, models.Cell{Value: "Total"}))
	require.NoError(t, g.Set(11, 1, models.Cell{Value: "55%"}))
	return g
}

func TestEncodeParseRoundTrip(t *testing.T) {
	enc, err := sheetpress.Compress(tableGrid(t), sheetpress.Options{Sheet: "FY24 \"draft\""})
	require.NoError(t, err)
	require.NotEmpty(t, enc.OmittedRows)
	require.NotEmpty(t, enc.AnchorRows)
	require.NotEmpty(t, enc.Regions)

	data := Encode(enc)
	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, enc, parsed)
}

func TestEncodeTextForm(t *testing.T) {
	enc, err := sheetpress.Compress(tableGrid(t), sheetpress.Options{Sheet: "Sheet1"})
	require.NoError(t, err)

	text := string(Encode(enc))
	require.True(t, strings.HasPrefix(text, "# sheetpress/v1\n"))
	require.Contains(t, text, `sheet: "Sheet1"`)
	require.Contains(t, text, "size: 12x2")
	require.Contains(t, text, "## layout")
	require.Contains(t, text, "omitted]")
	require.Contains(t, text, "## index")
	require.Contains(t, text, "## regions")
	require.Contains(t, text, `Percentage`)
}

func TestEncodeDeterministic(t *testing.T) {
	enc, err := sheetpress.Compress(tableGrid(t), sheetpress.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, Encode(enc), Encode(enc))
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing header", "size: 2x2\n"},
		{"missing size", "# sheetpress/v1\n"},
		{"bad size", "# sheetpress/v1\nsize: wide\n"},
		{"unknown header key", "# sheetpress/v1\nsize: 1x1\ncolor: red\n"},
		{"bad layout line", "# sheetpress/v1\nsize: 1x1\n\n## layout\nnot a row\n"},
		{"bad cell token", "# sheetpress/v1\nsize: 1x1\n\n## layout\nrow 0: A1=unquoted\n"},
		{"bad index range", "# sheetpress/v1\nsize: 1x1\n\n## index\n\"v\": !!\n"},
		{"unknown region type", "# sheetpress/v1\nsize: 1x1\n\n## regions\nBlob A1 \"\"\n"},
		{"unknown section", "# sheetpress/v1\nsize: 1x1\n\n## extras\nx\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestToJSON(t *testing.T) {
	enc, err := sheetpress.Compress(tableGrid(t), sheetpress.DefaultOptions())
	require.NoError(t, err)

	compactJSON, err := ToJSON(enc, false)
	require.NoError(t, err)
	require.Contains(t, string(compactJSON), `"rows":12`)

	prettyJSON, err := ToJSON(enc, true)
	require.NoError(t, err)
	require.Contains(t, string(prettyJSON), "\n")
}
