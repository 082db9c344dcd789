// Package tabyl builds frequency tables from tabular data and formats them
// through composable adornment steps.
//
// A tabyl is a [Table] of counts over 1-3 grouping variables, produced by
// [New] (1-way and 2-way) or [NewSplit] (3-way, one 2-way tabyl per value of
// the third variable). Alongside the display table, a [Tabyl] carries the
// raw counts as Core and the grouping variable names, so later adornment
// steps can always reach the original numbers.
//
// # Building
//
// Source data is a [Table]: named columns of typed cells (number, string,
// bool, missing). A column may declare factor Levels; declared levels appear
// in the output even at zero count. [Options] controls level and
// missing-value handling; its zero value shows everything:
//
//	t, err := tabyl.New(src, tabyl.Options{}, "cyl", "carb")
//
// A 1-way tabyl also carries percent and valid_percent columns, where
// valid_percent excludes missing observations from the denominator.
//
// # Adorning
//
// Adorners are pure transformations from one tabyl to the next. Each returns
// a new value; the input and its Core are never mutated.
//
//   - [Totals] — totals row and/or column over the numeric data columns
//   - [Percentages] — counts to fractions of a row/col/all denominator
//   - [Rounding] — numeric rounding, base or half-up tie-breaking
//   - [PercentFormatting] — fractions to "41.7%" display strings
//   - [Ns] — append raw counts, "41.7% (5)"
//
// The recommended order is the one above: totals once, then percentages,
// then either rounding or percent formatting, then N-annotation. The order
// is a caller contract, not enforced: percentaging twice doubly normalizes,
// and a second [Totals] call re-sums prior totals. [Chain] composes steps:
//
//	out, err := tabyl.Chain(t,
//		tabyl.WithTotals(tabyl.TotalsOptions{Rows: true, Cols: true}),
//		tabyl.WithPercentages(tabyl.AxisRow),
//		tabyl.WithFormatting(tabyl.FormatOptions{Digits: 1}),
//		tabyl.WithNs(tabyl.NsOptions{}),
//	)
//
// [Collection.Adorn] maps a chain over every entry of a 3-way result.
//
// Arbitrary tables can be adorned without going through a builder: wrap them
// with [FromTable]. Such tabyls have no Core, so [Ns] needs explicit counts.
//
// # Rounding
//
// Half-up rounding is decimal-aware: ties are detected on the shortest
// round-tripping decimal form of the value, not its binary approximation, so
// 0.105 at 2 digits rounds to 0.11 as a spreadsheet would, instead of
// falling back to round-half-to-even.
//
// # Rendering
//
// Finished tables render with [WriteTable] (terminal, several
// [BorderStyle]s), [WriteMarkdown], [WriteCSV], and [WriteYAML]. Renderers
// display missing cells as [NALabel].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling, among them:
//
//   - [ErrInvalidArity] — wrong number of grouping variables
//   - [ErrMissingVariable] — grouping variable absent from the source
//   - [ErrMissingCoreData] — [Ns] with no core and no explicit counts
//   - [ErrShapeMismatch] — count source doesn't align with the target
//   - [ErrTypeMismatch] — adorner hit a non-numeric data column
//
// # Concurrency
//
// Every operation is a pure function over immutable values. Independent
// tabyls may be built and adorned concurrently without locking; the package
// starts no goroutines of its own.
package tabyl
