package converter

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nconklindev/csvfix/internal/types"
)

// LoadTable reads a CSV file, discarding the first skipLines lines
// unconditionally, then parses a header row followed by data rows.
func LoadTable(path string, skipLines int) (*types.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Op: "read", Err: err}
	}
	defer file.Close()

	table, err := readTable(bufio.NewReader(file), skipLines)
	if err != nil {
		return nil, &FileError{Path: path, Op: "read", Err: err}
	}
	return table, nil
}

func readTable(br *bufio.Reader, skipLines int) (*types.Table, error) {
	for i := 0; i < skipLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}

	table := &types.Table{Fieldnames: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformed, line, len(record), len(header))
		}

		row := make(types.Row, len(record))
		for i, cell := range record {
			row[header[i]] = cell
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// SaveTable overwrites path with the table: header first, then rows in
// order. Absent columns are written empty. It returns the bytes written.
func SaveTable(path string, table *types.Table) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, &FileError{Path: path, Op: "write", Err: err}
	}
	defer file.Close()

	counter := &countingWriter{w: file}
	if err := writeTable(counter, table); err != nil {
		return counter.n, &FileError{Path: path, Op: "write", Err: err}
	}

	if err := file.Close(); err != nil {
		return counter.n, &FileError{Path: path, Op: "write", Err: err}
	}
	return counter.n, nil
}

func writeTable(w io.Writer, table *types.Table) error {
	// Minimal quoting, except that encoding/csv also quotes fields starting
	// with a space; excel-dialect writers leave those bare.
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writeRecord(w, writer, table.Fieldnames); err != nil {
		return err
	}

	record := make([]string, len(table.Fieldnames))
	for _, row := range table.Rows {
		for i, name := range table.Fieldnames {
			record[i] = row[name]
		}
		if err := writeRecord(w, writer, record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// emptyRecord is a single empty field. Written bare it would be a blank line,
// which readers skip.
const emptyRecord = "\"\"\r\n"

func writeRecord(w io.Writer, writer *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return writer.Write(record)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, emptyRecord)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
