package report

import(
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
)

// BigQueryTarget names the table that exported rows land in.
type BigQueryTarget struct {
	Project string `yaml:"project"`
	Dataset string `yaml:"dataset"`
	Table   string `yaml:"table"`
}

func (t BigQueryTarget)IsNil() bool { return t.Project == "" || t.Dataset == "" || t.Table == "" }
func (t BigQueryTarget)String() string { return fmt.Sprintf("%s:%s.%s", t.Project, t.Dataset, t.Table) }

// ExportToBigQuery streams rows into the target table. The rows should be a slice of
// structs (or pointers to them), which are mapped into columns by their field names.
func ExportToBigQuery(ctx context.Context, target BigQueryTarget, rows interface{}) error {
	if target.IsNil() { return fmt.Errorf("ExportToBigQuery: incomplete target '%s'", target) }

	client,err := bigquery.NewClient(ctx, target.Project)
	if err != nil { return fmt.Errorf("ExportToBigQuery: NewClient: %w", err) }
	defer client.Close()

	ins := client.Dataset(target.Dataset).Table(target.Table).Inserter()
	if err := ins.Put(ctx, rows); err != nil {
		return fmt.Errorf("ExportToBigQuery %s: %w", target, err)
	}

	return nil
}
