package tabyl_test

import (
	"fmt"
	"testing"

	"github.com/bjaus/tabyl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWayFixture(t *testing.T) *tabyl.Tabyl {
	t.Helper()
	tb, err := tabyl.New(carsTable(t), tabyl.Options{}, "cyl", "carb")
	require.NoError(t, err)
	return tb
}

func bareTable(t *testing.T, name string, values ...float64) *tabyl.Tabyl {
	t.Helper()
	keys := make([]tabyl.Cell, len(values))
	cells := make([]tabyl.Cell, len(values))
	for i, v := range values {
		keys[i] = tabyl.String(fmt.Sprintf("r%d", i))
		cells[i] = tabyl.Number(v)
	}
	tbl, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: keys},
		tabyl.Column{Name: name, Cells: cells},
	)
	require.NoError(t, err)
	return tabyl.FromTable(tbl)
}

func strColumn(t *testing.T, tb *tabyl.Tabyl, name string) []string {
	t.Helper()
	col, ok := tb.Column(name)
	require.True(t, ok, "column %q", name)
	out := make([]string, len(col.Cells))
	for i, c := range col.Cells {
		out[i] = c.Display()
	}
	return out
}

// --- Axis and RoundMode parsing ---

func TestParseAxis(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabyl.Axis
		wantErr require.ErrorAssertionFunc
	}{
		"row":     {input: "row", want: tabyl.AxisRow, wantErr: require.NoError},
		"col":     {input: "col", want: tabyl.AxisCol, wantErr: require.NoError},
		"all":     {input: "all", want: tabyl.AxisAll, wantErr: require.NoError},
		"unknown": {input: "diagonal", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabyl.ParseAxis(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoundMode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabyl.RoundMode
		wantErr require.ErrorAssertionFunc
	}{
		"base":    {input: "base", want: tabyl.RoundBase, wantErr: require.NoError},
		"half up": {input: "half up", want: tabyl.RoundHalfUp, wantErr: require.NoError},
		"unknown": {input: "ceiling", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabyl.ParseRoundMode(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Totals ---

func TestTotalsRowsAndCols(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Totals(twoWayFixture(t), tabyl.TotalsOptions{Rows: true, Cols: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"cyl", "1", "2", "3", "4", "Total"}, tb.Names())
	assert.Equal(t, []string{"4", "6", "8", "Total"}, keyDisplays(t, tb))
	assert.Equal(t, []float64{4, 2, 1, 3}, []float64{
		numColumn(t, tb, "1")[3], numColumn(t, tb, "2")[3],
		numColumn(t, tb, "3")[3], numColumn(t, tb, "4")[3],
	})
	// Bottom-right cell is the grand total.
	assert.Equal(t, []float64{3, 3, 4, 10}, numColumn(t, tb, "Total"))
}

func TestTotalsDefaultIsRow(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Totals(twoWayFixture(t), tabyl.TotalsOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "6", "8", "Total"}, keyDisplays(t, tb))
	assert.Equal(t, []string{"cyl", "1", "2", "3", "4"}, tb.Names())
}

func TestTotalsDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := twoWayFixture(t)
	_, err := tabyl.Totals(in, tabyl.TotalsOptions{Rows: true, Cols: true})
	require.NoError(t, err)
	assert.Equal(t, 3, in.NumRows())
	assert.Equal(t, 5, in.NumCols())
}

func TestTotalsTypeMismatch(t *testing.T) {
	t.Parallel()
	tbl, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: []tabyl.Cell{tabyl.String("a")}},
		tabyl.Column{Name: "note", Cells: []tabyl.Cell{tabyl.String("text")}},
	)
	require.NoError(t, err)
	_, err = tabyl.Totals(tabyl.FromTable(tbl), tabyl.TotalsOptions{})
	require.ErrorIs(t, err, tabyl.ErrTypeMismatch)
	assert.Contains(t, err.Error(), `"note"`)
}

// --- Percentages ---

func TestPercentagesRow(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Percentages(twoWayFixture(t), tabyl.AxisRow)
	require.NoError(t, err)
	for r := 0; r < tb.NumRows(); r++ {
		var sum float64
		for c := 1; c < tb.NumCols(); c++ {
			sum += tb.Row(r)[c].Float()
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "row %d", r)
	}
}

func TestPercentagesCol(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Percentages(twoWayFixture(t), tabyl.AxisCol)
	require.NoError(t, err)
	for c := 1; c < tb.NumCols(); c++ {
		var sum float64
		for _, cell := range tb.Col(c).Cells {
			sum += cell.Float()
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "column %d", c)
	}
}

func TestPercentagesAll(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Percentages(twoWayFixture(t), tabyl.AxisAll)
	require.NoError(t, err)
	var sum float64
	for c := 1; c < tb.NumCols(); c++ {
		for _, cell := range tb.Col(c).Cells {
			sum += cell.Float()
		}
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestPercentagesZeroRowStaysZero(t *testing.T) {
	t.Parallel()
	tbl, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: []tabyl.Cell{tabyl.String("a"), tabyl.String("b")}},
		tabyl.Column{Name: "x", Cells: []tabyl.Cell{tabyl.Number(2), tabyl.Number(0)}},
		tabyl.Column{Name: "y", Cells: []tabyl.Cell{tabyl.Number(2), tabyl.Number(0)}},
	)
	require.NoError(t, err)
	tb, err := tabyl.Percentages(tabyl.FromTable(tbl), tabyl.AxisRow)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0}, numColumn(t, tb, "x"))
	assert.Equal(t, []float64{0.5, 0}, numColumn(t, tb, "y"))
}

func TestPercentagesUnknownAxis(t *testing.T) {
	t.Parallel()
	_, err := tabyl.Percentages(twoWayFixture(t), tabyl.Axis("diagonal"))
	require.ErrorIs(t, err, tabyl.ErrUnknownAxis)
}

func TestPercentagesTypeMismatch(t *testing.T) {
	t.Parallel()
	tbl, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: []tabyl.Cell{tabyl.String("a")}},
		tabyl.Column{Name: "note", Cells: []tabyl.Cell{tabyl.String("text")}},
	)
	require.NoError(t, err)
	_, err = tabyl.Percentages(tabyl.FromTable(tbl), tabyl.AxisRow)
	require.ErrorIs(t, err, tabyl.ErrTypeMismatch)
}

// --- Rounding ---

func TestRoundingModes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		values []float64
		digits int
		mode   tabyl.RoundMode
		want   []float64
	}{
		"half up ties away from zero": {
			values: []float64{10.5, 2.5, -10.5},
			digits: 0,
			mode:   tabyl.RoundHalfUp,
			want:   []float64{11, 3, -11},
		},
		"base ties to even": {
			values: []float64{10.5, 2.5, -10.5},
			digits: 0,
			mode:   tabyl.RoundBase,
			want:   []float64{10, 2, -10},
		},
		"half up decimal tie detection": {
			values: []float64{0.105, 0.125},
			digits: 2,
			mode:   tabyl.RoundHalfUp,
			want:   []float64{0.11, 0.13},
		},
		"base decimal ties": {
			values: []float64{0.105, 0.125},
			digits: 2,
			mode:   tabyl.RoundBase,
			want:   []float64{0.1, 0.12},
		},
		"non-tie unaffected by mode": {
			values: []float64{0.1049, 2.51},
			digits: 2,
			mode:   tabyl.RoundBase,
			want:   []float64{0.1, 2.51},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tb, err := tabyl.Rounding(bareTable(t, "v", tt.values...), tt.digits, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, numColumn(t, tb, "v"))
		})
	}
}

func TestRoundingInvalidDigits(t *testing.T) {
	t.Parallel()
	_, err := tabyl.Rounding(bareTable(t, "v", 1.5), -1, tabyl.RoundHalfUp)
	require.ErrorIs(t, err, tabyl.ErrInvalidDigits)
}

func TestRoundingUnknownMode(t *testing.T) {
	t.Parallel()
	_, err := tabyl.Rounding(bareTable(t, "v", 1.5), 0, tabyl.RoundMode("ceiling"))
	require.ErrorIs(t, err, tabyl.ErrUnknownRoundMode)
}

func TestRoundingOutputStaysNumeric(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Rounding(bareTable(t, "v", 1.25), 1, tabyl.RoundHalfUp)
	require.NoError(t, err)
	col, ok := tb.Column("v")
	require.True(t, ok)
	assert.Equal(t, tabyl.KindNumber, col.Cells[0].Kind())
	assert.Equal(t, 1.3, col.Cells[0].Float())
}

// --- Percent formatting ---

func TestPercentFormatting(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value float64
		opt   tabyl.FormatOptions
		want  string
	}{
		"defaults":      {value: 0.415, opt: tabyl.FormatOptions{}, want: "42%"},
		"one digit":     {value: 2.0 / 3, opt: tabyl.FormatOptions{Digits: 1}, want: "66.7%"},
		"no suffix":     {value: 0.25, opt: tabyl.FormatOptions{Digits: 1, NoSuffix: true}, want: "25.0"},
		"base tie":      {value: 0.105, opt: tabyl.FormatOptions{Rounding: tabyl.RoundBase}, want: "10%"},
		"half up tie":   {value: 0.105, opt: tabyl.FormatOptions{}, want: "11%"},
		"padded digits": {value: 0.5, opt: tabyl.FormatOptions{Digits: 2}, want: "50.00%"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tb, err := tabyl.PercentFormatting(bareTable(t, "pct", tt.value), tt.opt)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, strColumn(t, tb, "pct"))
		})
	}
}

func TestPercentFormattingKeepsMissing(t *testing.T) {
	t.Parallel()
	tbl, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: []tabyl.Cell{tabyl.String("a"), tabyl.String("b")}},
		tabyl.Column{Name: "pct", Cells: []tabyl.Cell{tabyl.Number(0.5), tabyl.NA()}},
	)
	require.NoError(t, err)
	tb, err := tabyl.PercentFormatting(tabyl.FromTable(tbl), tabyl.FormatOptions{})
	require.NoError(t, err)
	col, ok := tb.Column("pct")
	require.True(t, ok)
	assert.Equal(t, "50%", col.Cells[0].Str())
	assert.True(t, col.Cells[1].IsNA())
}

// --- N-annotation ---

func TestNsFromCore(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Chain(twoWayFixture(t),
		tabyl.WithPercentages(tabyl.AxisRow),
		tabyl.WithFormatting(tabyl.FormatOptions{Digits: 1}),
		tabyl.WithNs(tabyl.NsOptions{}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"66.7% (2)", "66.7% (2)", "0.0% (0)"}, strColumn(t, tb, "1"))
	assert.Equal(t, []string{"33.3% (1)", "0.0% (0)", "25.0% (1)"}, strColumn(t, tb, "2"))
	assert.Equal(t, []string{"0.0% (0)", "33.3% (1)", "50.0% (2)"}, strColumn(t, tb, "4"))
}

func TestNsOneWayCoreServesAllColumns(t *testing.T) {
	t.Parallel()
	one, err := tabyl.New(sizeTable(t), tabyl.Options{}, "size")
	require.NoError(t, err)
	tb, err := tabyl.Ns(one, tabyl.NsOptions{})
	require.NoError(t, err)
	// Every data column is annotated from the single core count column.
	assert.Equal(t, []string{"2 (2)", "3 (3)", "1 (1)"}, strColumn(t, tb, "n"))
	pct := strColumn(t, tb, "percent")
	assert.Contains(t, pct[0], "(2)")
	assert.Contains(t, pct[1], "(3)")
}

func TestNsKeepsZeroCountLevels(t *testing.T) {
	t.Parallel()
	col := sizeColumn()
	col.Levels = []string{"big", "small", "medium"}
	src, err := tabyl.NewTable(col)
	require.NoError(t, err)
	one, err := tabyl.New(src, tabyl.Options{}, "size")
	require.NoError(t, err)

	tb, err := tabyl.Ns(one, tabyl.NsOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"big", "small", "medium", "<NA>"}, keyDisplays(t, tb))
	assert.Equal(t, "0 (0)", strColumn(t, tb, "n")[2])
}

func TestNsMissingCore(t *testing.T) {
	t.Parallel()
	_, err := tabyl.Ns(bareTable(t, "v", 1), tabyl.NsOptions{})
	require.ErrorIs(t, err, tabyl.ErrMissingCoreData)
}

func TestNsExplicitCounts(t *testing.T) {
	t.Parallel()
	counts, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: []tabyl.Cell{tabyl.String("r0")}},
		tabyl.Column{Name: "v", Cells: []tabyl.Cell{tabyl.Number(7)}},
	)
	require.NoError(t, err)
	tb, err := tabyl.Ns(bareTable(t, "v", 0.5), tabyl.NsOptions{Counts: counts})
	require.NoError(t, err)
	assert.Equal(t, []string{"0.5 (7)"}, strColumn(t, tb, "v"))
}

func TestNsShapeMismatch(t *testing.T) {
	t.Parallel()
	counts, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: []tabyl.Cell{tabyl.String("other")}},
		tabyl.Column{Name: "v", Cells: []tabyl.Cell{tabyl.Number(7)}},
	)
	require.NoError(t, err)
	_, err = tabyl.Ns(bareTable(t, "v", 0.5), tabyl.NsOptions{Counts: counts})
	require.ErrorIs(t, err, tabyl.ErrShapeMismatch)
}

func TestNsSkipsTotals(t *testing.T) {
	t.Parallel()
	tb, err := tabyl.Chain(twoWayFixture(t),
		tabyl.WithTotals(tabyl.TotalsOptions{Rows: true, Cols: true}),
		tabyl.WithNs(tabyl.NsOptions{}),
	)
	require.NoError(t, err)
	col1 := strColumn(t, tb, "1")
	assert.Equal(t, "2 (2)", col1[0])
	assert.Equal(t, "4", col1[3], "the Total row stays unannotated")
	assert.Equal(t, []string{"3", "3", "4", "10"}, strColumn(t, tb, "Total"))
}

func TestNsCustomFormat(t *testing.T) {
	t.Parallel()
	counts, err := tabyl.NewTable(
		tabyl.Column{Name: "key", Cells: []tabyl.Cell{tabyl.String("r0")}},
		tabyl.Column{Name: "v", Cells: []tabyl.Cell{tabyl.Number(5000)}},
	)
	require.NoError(t, err)
	tb, err := tabyl.Ns(bareTable(t, "v", 0.5), tabyl.NsOptions{
		Counts: counts,
		Format: func(n float64) string { return fmt.Sprintf("%.0fk", n/1000) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0.5 (5k)"}, strColumn(t, tb, "v"))
}

// --- Chain and Collection.Adorn ---

func TestChainMatchesSequentialCalls(t *testing.T) {
	t.Parallel()
	chained, err := tabyl.Chain(twoWayFixture(t),
		tabyl.WithTotals(tabyl.TotalsOptions{Rows: true}),
		tabyl.WithPercentages(tabyl.AxisCol),
		tabyl.WithRounding(3, tabyl.RoundHalfUp),
	)
	require.NoError(t, err)

	step, err := tabyl.Totals(twoWayFixture(t), tabyl.TotalsOptions{Rows: true})
	require.NoError(t, err)
	step, err = tabyl.Percentages(step, tabyl.AxisCol)
	require.NoError(t, err)
	step, err = tabyl.Rounding(step, 3, tabyl.RoundHalfUp)
	require.NoError(t, err)

	assert.Equal(t, step.Names(), chained.Names())
	for r := 0; r < step.NumRows(); r++ {
		assert.Equal(t, step.Row(r), chained.Row(r))
	}
}

func TestChainStopsAtFirstError(t *testing.T) {
	t.Parallel()
	_, err := tabyl.Chain(twoWayFixture(t),
		tabyl.WithPercentages(tabyl.Axis("bogus")),
		tabyl.WithRounding(0, tabyl.RoundHalfUp),
	)
	require.ErrorIs(t, err, tabyl.ErrUnknownAxis)
}

func TestCollectionAdorn(t *testing.T) {
	t.Parallel()
	c, err := tabyl.NewSplit(carsTable(t), tabyl.Options{}, "cyl", "carb", "am")
	require.NoError(t, err)

	adorned, err := c.Adorn(
		tabyl.WithPercentages(tabyl.AxisRow),
		tabyl.WithFormatting(tabyl.FormatOptions{Digits: 1}),
		tabyl.WithNs(tabyl.NsOptions{}),
	)
	require.NoError(t, err)
	require.Equal(t, c.Len(), adorned.Len())

	for key, entry := range adorned.All() {
		col := entry.Col(1)
		for i, cell := range col.Cells {
			assert.Equal(t, tabyl.KindString, cell.Kind(), "entry %s row %d", key.Display(), i)
			assert.Contains(t, cell.Str(), "%")
		}
	}

	// Originals untouched.
	orig, ok := c.Get(tabyl.Number(0))
	require.True(t, ok)
	assert.Equal(t, tabyl.KindNumber, orig.Col(1).Cells[0].Kind())
}
