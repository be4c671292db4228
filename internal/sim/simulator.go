package sim

import (
	"context"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
)

// Simulator is one kind of simulation a class/spec run can produce.
// Hooks run in order: PreProcess, AddSimulationData, then PostProcess once
// the external simulator has produced results for the batch.
type Simulator interface {
	Name() string
	PreProcess(ctx context.Context, d *Data) error
	AddSimulationData(ctx context.Context, d *Data) error
	PostProcess(ctx context.Context, d *Data, results map[string]float64) (Matrix, error)
}

// Data is the state of one class/spec run. Each run owns its Data; nothing
// in it is shared with other runs.
type Data struct {
	Class   string
	Spec    string
	Profile domain.CharacterProfile

	// Overrides is set by PreProcess.
	Overrides *domain.BuildOverrides
	// Batch is set by AddSimulationData.
	Batch *domain.JobBatch
}

// Matrix holds results per build (rows, in build order) and tier label (columns).
type Matrix struct {
	Columns []string
	Rows    []MatrixRow
}

type MatrixRow struct {
	Build string
	// Values is keyed by column. Jobs without a result are absent.
	Values map[string]float64
}
