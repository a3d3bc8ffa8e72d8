package converter

import (
	"os"

	"github.com/nconklindev/csvfix/internal/types"

	"github.com/xuri/excelize/v2"
)

// LoadWorkbook reads the first sheet of an XLSX file. The first skipRows rows
// are discarded, the next row is the header. Empty rows are kept so row
// positions map back onto the sheet.
func LoadWorkbook(path string, skipRows int) (*types.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &FileError{Path: path, Op: "read", Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Op: "read", Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &FileError{Path: path, Op: "read", Err: err}
	}

	if len(rows) <= skipRows {
		return nil, &FileError{Path: path, Op: "read", Err: ErrEmptyFile}
	}

	header := rows[skipRows]
	table := &types.Table{Fieldnames: header, HeaderRow: skipRows}
	for _, record := range rows[skipRows+1:] {
		row := make(types.Row, len(record))
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			row[header[i]] = cell
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// SaveWorkbook writes the converted cells back into the first sheet of path,
// leaving every other cell and its styling alone. General numbers become
// numeric cells. It returns the size of the saved file.
func SaveWorkbook(path string, table *types.Table, conversions []types.Conversion) (int64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, &FileError{Path: path, Op: "write", Err: err}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)

	// A repeated header name holds the value of its last column.
	colIndex := make(map[string]int, len(table.Fieldnames))
	for i, name := range table.Fieldnames {
		colIndex[name] = i
	}

	for _, c := range conversions {
		cell, err := excelize.CoordinatesToCellName(colIndex[c.Column]+1, table.HeaderRow+c.Row+2)
		if err != nil {
			return 0, &FileError{Path: path, Op: "write", Err: err}
		}

		var value interface{} = c.New
		if c.Category == types.CategoryGeneral {
			value = c.Number
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return 0, &FileError{Path: path, Op: "write", Err: err}
		}
	}

	if err := f.Save(); err != nil {
		return 0, &FileError{Path: path, Op: "write", Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, &FileError{Path: path, Op: "write", Err: err}
	}
	return info.Size(), nil
}
