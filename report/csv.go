package report

import(
	"encoding/csv"
	"io"
)

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if len(r.HeadersText) > 0 {
		if err := csvWriter.Write(r.HeadersText); err != nil { return err }
	}
	if err := csvWriter.WriteAll(r.RowsText); err != nil { return err }
	return csvWriter.Error()
}

// OutputMetadataAsCSV writes the counters and stats as key,value rows.
func (r *Report)OutputMetadataAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	return csvWriter.WriteAll(r.MetadataTable())
}
