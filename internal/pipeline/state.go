package pipeline

import "github.com/kurochkinivan/sheet_ingest/internal/domain"

type StateKind string

const (
	StateIdle                        StateKind = "idle"
	StateReadingFile                 StateKind = "reading_file"
	StateValidatingColumns           StateKind = "validating_columns"
	StateAwaitingColumnDecision      StateKind = "awaiting_column_decision"
	StateResolvingCustomers          StateKind = "resolving_customers"
	StateUploading                   StateKind = "uploading"
	StateAwaitingBrandClassification StateKind = "awaiting_brand_classification"
	StateFinalizing                  StateKind = "finalizing"
	StateDone                        StateKind = "done"
)

// State is the position of the Orchestrator. The two Awaiting states carry what the
// user has to answer; processing continues from there once Resume accepts an answer.
type State interface {
	Kind() StateKind
	File() string
}

type Idle struct{}

type ReadingFile struct{ FileID string }

type ValidatingColumns struct{ FileID string }

type AwaitingColumnDecision struct {
	FileID   string
	Decision domain.ColumnDecision
}

type ResolvingCustomers struct{ FileID string }

type Uploading struct {
	FileID       string
	Batch        int
	TotalBatches int
}

type AwaitingBrandClassification struct {
	FileID    string
	Batch     int
	NewBrands []string
}

type Finalizing struct{ FileID string }

type Done struct{ Summary *domain.RunSummary }

func (Idle) Kind() StateKind                        { return StateIdle }
func (ReadingFile) Kind() StateKind                 { return StateReadingFile }
func (ValidatingColumns) Kind() StateKind           { return StateValidatingColumns }
func (AwaitingColumnDecision) Kind() StateKind      { return StateAwaitingColumnDecision }
func (ResolvingCustomers) Kind() StateKind          { return StateResolvingCustomers }
func (Uploading) Kind() StateKind                   { return StateUploading }
func (AwaitingBrandClassification) Kind() StateKind { return StateAwaitingBrandClassification }
func (Finalizing) Kind() StateKind                  { return StateFinalizing }
func (Done) Kind() StateKind                        { return StateDone }

func (Idle) File() string                          { return "" }
func (s ReadingFile) File() string                 { return s.FileID }
func (s ValidatingColumns) File() string           { return s.FileID }
func (s AwaitingColumnDecision) File() string      { return s.FileID }
func (s ResolvingCustomers) File() string          { return s.FileID }
func (s Uploading) File() string                   { return s.FileID }
func (s AwaitingBrandClassification) File() string { return s.FileID }
func (s Finalizing) File() string                  { return s.FileID }
func (Done) File() string                          { return "" }
