package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/sim"
)

// WriteBatchJSON writes the jobs as an indented JSON array, in batch order.
func WriteBatchJSON(w io.Writer, batch *domain.JobBatch) error {
	jobs := batch.Jobs()
	if jobs == nil {
		jobs = []domain.JobDescriptor{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jobs)
}

// PrintMatrix writes one line per build with its value per tier.
func PrintMatrix(w io.Writer, m sim.Matrix) {
	if len(m.Rows) == 0 {
		fmt.Fprintln(w, "No results")
		return
	}
	for _, row := range m.Rows {
		fmt.Fprintf(w, "- %s:", row.Build)
		for _, c := range m.Columns {
			v, ok := row.Values[c]
			if !ok {
				fmt.Fprintf(w, " %s=n/a", c)
				continue
			}
			fmt.Fprintf(w, " %s=%.0f", c, v)
		}
		fmt.Fprintln(w)
	}
}
