package audit

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// ExportHeader is the fixed column set for tabular export, consumed by
// spreadsheet tooling.
var ExportHeader = []string{"timestamp", "time_local", "event", "details"}

// WriteCSV serializes events to w, one header row plus one row per
// event, in the order given (newest first when fed from a Log). It is
// a pure serialization and mutates nothing.
func WriteCSV(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, ev := range events {
		row := []string{
			ev.At().UTC().Format(time.RFC3339),
			ev.At().Local().Format("2006-01-02 15:04:05"),
			string(ev.Kind()),
			ev.Details(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing event %s: %w", ev.EventID(), err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}
