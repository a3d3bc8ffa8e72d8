package types

// Category is the numeric shape a cell was classified as.
type Category string

const (
	CategoryNone     Category = "none"
	CategoryGeneral  Category = "general"
	CategoryCurrency Category = "currency"
	CategoryPercent  Category = "percent"
)

// Row maps column names to cell values. A column missing from the map was
// absent in the source row.
type Row map[string]string

// Table is one file's header and rows, in source order.
type Table struct {
	Fieldnames []string
	Rows       []Row
	// HeaderRow is the 0-based row index of the header inside the source
	// sheet. Only set for workbooks.
	HeaderRow int
}

// Conversion records one overwritten cell.
type Conversion struct {
	Row      int
	Column   string
	Category Category
	Old      string
	New      string
	Number   float64
}

type FileResult struct {
	File         string
	Rows         int
	Conversions  []Conversion
	BytesWritten int64
}

// Converted counts conversions per category.
func (r *FileResult) Converted() map[Category]int {
	counts := make(map[Category]int)
	for _, c := range r.Conversions {
		counts[c.Category]++
	}
	return counts
}

type FileFailure struct {
	File string
	Err  error
}

type BatchResult struct {
	Files  []FileResult
	Failed []FileFailure
}
