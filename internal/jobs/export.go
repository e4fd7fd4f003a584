package jobs

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteDelimited serializes the presented table as delimited text: one
// header row of display labels, then one row per record, using the same
// delimiter as the source file. The output is a faithful rendering of the
// table as presented; no re-filtering or re-labeling happens here.
func (t PresentedTable) WriteDelimited(w io.Writer, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
