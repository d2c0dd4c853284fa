package postgresql

var (
	BatchTotals        = batchTotals
	RowValues          = rowValues
	TargetColumns      = targetColumns
	MissingNames       = missingNames
	UnclassifiedBrands = unclassifiedBrands
	DistinctValues     = distinctValues
)
