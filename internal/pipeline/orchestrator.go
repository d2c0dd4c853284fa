package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

type Components struct {
	Reader     *Reader
	Validator  *Validator
	Resolver   *Resolver
	Uploader   *Uploader
	Ledger     *Ledger
	Heartbeat  *Heartbeat
	Mappings   SheetMappingProvider
	Maintainer Maintainer
}

// Progress is a point-in-time view of the current or last run.
type Progress struct {
	State            StateKind              `json:"state"`
	Running          bool                   `json:"running"`
	FileID           string                 `json:"file_id,omitempty"`
	CurrentFileIndex int                    `json:"current_file_index"`
	ProgressPercent  int                    `json:"progress_percent"`
	Batch            int                    `json:"batch"`
	TotalBatches     int                    `json:"total_batches"`
	ElapsedMs        int64                  `json:"elapsed_ms"`
	PendingColumns   *domain.ColumnDecision `json:"pending_columns,omitempty"`
	PendingBrands    []string               `json:"pending_brands,omitempty"`
	Files            []*domain.FileTask     `json:"files"`
	Summary          *domain.RunSummary     `json:"summary,omitempty"`
}

// Orchestrator drives queued files one at a time through read, column validation,
// customer resolution, batch upload and ledger finalization. It pauses at the two
// decision points until Resume supplies an answer.
type Orchestrator struct {
	log *slog.Logger
	Components
	queue     *Queue
	summaries chan<- *domain.RunSummary

	starts    chan string
	decisions chan Decision

	mu           sync.Mutex
	sheets       map[string]*domain.SheetMapping
	state        State
	awaiting     bool
	running      bool
	currentIndex int
	percent      int
	startedAt    time.Time
	finishedAt   time.Time
	summary      *domain.RunSummary
}

func NewOrchestrator(log *slog.Logger, c Components, summaries chan<- *domain.RunSummary) *Orchestrator {
	return &Orchestrator{
		log:          log,
		Components:   c,
		queue:        NewQueue(),
		summaries:    summaries,
		starts:       make(chan string, 1),
		decisions:    make(chan Decision, 1),
		sheets:       make(map[string]*domain.SheetMapping),
		state:        Idle{},
		currentIndex: -1,
	}
}

// LoadSheetMappings reads the active mappings that files may be assigned to.
func (o *Orchestrator) LoadSheetMappings(ctx context.Context) error {
	mappings, err := o.Mappings.ActiveSheetMappings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sheet mappings: %w", err)
	}

	sheets := make(map[string]*domain.SheetMapping, len(mappings))
	for _, m := range mappings {
		sheets[m.ID] = m
	}

	o.mu.Lock()
	o.sheets = sheets
	o.mu.Unlock()

	o.log.InfoContext(ctx, "sheet mappings loaded", slog.Int("count", len(sheets)))

	return nil
}

func (o *Orchestrator) SheetMappings() []*domain.SheetMapping {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]*domain.SheetMapping, 0, len(o.sheets))
	for _, m := range o.sheets {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b *domain.SheetMapping) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	return out
}

func (o *Orchestrator) AddFile(name string, data []byte, sheetMappingID string) (*domain.FileTask, error) {
	if !o.knownSheet(sheetMappingID) {
		return nil, domain.ErrUnknownSheetMapping
	}

	task := &domain.FileTask{
		ID:             uuid.NewString(),
		Source:         domain.SourceFile{Name: name, Data: data},
		FileName:       name,
		SheetMappingID: sheetMappingID,
		Status:         domain.StatusPending,
		AddedAt:        time.Now(),
	}
	o.queue.Enqueue(task)

	return task.Clone(), nil
}

func (o *Orchestrator) AssignSheetMapping(fileID, sheetMappingID string) error {
	if !o.knownSheet(sheetMappingID) {
		return domain.ErrUnknownSheetMapping
	}

	var busy bool
	err := o.queue.Update(fileID, func(t *domain.FileTask) {
		if t.Status != domain.StatusPending {
			busy = true
			return
		}
		t.SheetMappingID = sheetMappingID
	})
	if err != nil {
		return err
	}
	if busy {
		return domain.ErrFileBusy
	}

	return nil
}

func (o *Orchestrator) RemoveFile(fileID string) error {
	return o.queue.Remove(fileID)
}

func (o *Orchestrator) Files() []*domain.FileTask {
	return o.queue.Snapshot()
}

// Start asks Run to drain the queue on behalf of uploader.
func (o *Orchestrator) Start(uploader string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.running {
		return domain.ErrRunInProgress
	}

	select {
	case o.starts <- uploader:
		o.running = true
		o.summary = nil
		o.startedAt = time.Now()
		o.finishedAt = time.Time{}
		return nil
	default:
		return domain.ErrRunInProgress
	}
}

// Run serves start requests until ctx is done. Runs are strictly sequential.
func (o *Orchestrator) Run(ctx context.Context) error {
	if o.summaries != nil {
		defer close(o.summaries)
	}

	for {
		select {
		case uploader := <-o.starts:
			summary := o.drain(ctx, uploader)

			if o.summaries != nil && summary != nil {
				select {
				case o.summaries <- summary:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Resume answers the pending pause. A decision that does not fit the pause is
// rejected and the pause stays in place.
func (o *Orchestrator) Resume(d Decision) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.awaiting {
		return domain.ErrNoPendingDecision
	}

	switch s := o.state.(type) {
	case AwaitingColumnDecision:
		switch d.(type) {
		case Proceed, Skip, Cancel:
		default:
			return domain.ErrDecisionMismatch
		}

	case AwaitingBrandClassification:
		switch d := d.(type) {
		case Classify:
			for _, brand := range s.NewBrands {
				if d.Classifications[brand] == "" {
					return fmt.Errorf("%w: %q", domain.ErrIncompleteClassification, brand)
				}
			}
		case Skip, Cancel:
		default:
			return domain.ErrDecisionMismatch
		}

	default:
		return domain.ErrNoPendingDecision
	}

	o.awaiting = false
	o.decisions <- d

	return nil
}

// SkipFile skips fileID if it is the file currently paused.
func (o *Orchestrator) SkipFile(fileID string) error {
	o.mu.Lock()
	paused := o.awaiting && o.state.File() == fileID
	o.mu.Unlock()

	if !paused {
		return domain.ErrNoPendingDecision
	}

	return o.Resume(Skip{})
}

func (o *Orchestrator) Progress() Progress {
	o.mu.Lock()
	defer o.mu.Unlock()

	p := Progress{
		State:            o.state.Kind(),
		Running:          o.running,
		FileID:           o.state.File(),
		CurrentFileIndex: o.currentIndex,
		ProgressPercent:  o.percent,
		Files:            o.queue.Snapshot(),
		Summary:          o.summary,
	}

	if !o.startedAt.IsZero() {
		end := o.finishedAt
		if end.IsZero() {
			end = time.Now()
		}
		p.ElapsedMs = end.Sub(o.startedAt).Milliseconds()
	}

	switch s := o.state.(type) {
	case Uploading:
		p.Batch, p.TotalBatches = s.Batch, s.TotalBatches
	case AwaitingBrandClassification:
		p.Batch = s.Batch
		if o.awaiting {
			p.PendingBrands = slices.Clone(s.NewBrands)
		}
	case AwaitingColumnDecision:
		if o.awaiting {
			decision := s.Decision
			p.PendingColumns = &decision
		}
	}

	return p
}

func (o *Orchestrator) drain(ctx context.Context, uploader string) *domain.RunSummary {
	o.log.InfoContext(ctx, "run started", slog.String("uploader", uploader))

	o.Resolver.Reset()

	o.Heartbeat.Start(ctx, uploader)
	defer o.Heartbeat.Stop()

	var processed []string
	for ctx.Err() == nil {
		task, index, ok := o.queue.NextPending()
		if !ok {
			break
		}

		processed = append(processed, task.ID)
		o.processFile(ctx, uploader, task, index)
	}

	files := make([]*domain.FileTask, 0, len(processed))
	for _, id := range processed {
		if t, err := o.queue.Get(id); err == nil {
			files = append(files, t)
		}
	}

	o.mu.Lock()
	summary := domain.NewRunSummary(uploader, o.startedAt, files)
	o.summary = summary
	o.state = Done{Summary: summary}
	o.running = false
	o.finishedAt = summary.FinishedAt
	o.mu.Unlock()

	o.log.InfoContext(ctx, "run finished",
		slog.Int("total_files", summary.TotalFiles),
		slog.Int("successful_files", summary.SuccessfulFiles),
		slog.Int("failed_files", summary.FailedFiles),
		slog.Int("total_records", summary.TotalRecords),
		slog.String("total_value", summary.TotalValue.String()),
	)

	return summary
}

func (o *Orchestrator) processFile(ctx context.Context, uploader string, task *domain.FileTask, index int) {
	log := o.log.With(
		slog.String("file_id", task.ID),
		slog.String("filename", task.FileName),
	)

	log.InfoContext(ctx, "processing file")

	o.mu.Lock()
	o.currentIndex = index
	o.percent = 0
	o.mu.Unlock()

	f := &fileRun{task: task, uploader: uploader, log: log}
	outcome, err := o.ingest(ctx, f)
	o.finalize(ctx, f, outcome, err)
}

// fileRun is the state kept for the file being processed.
type fileRun struct {
	task     *domain.FileTask
	uploader string
	log      *slog.Logger
	logID    string
}

func (o *Orchestrator) ingest(ctx context.Context, f *fileRun) (*domain.UploadOutcome, error) {
	o.setState(ReadingFile{FileID: f.task.ID})

	mapping, err := o.sheetMapping(ctx, f.task.SheetMappingID)
	if err != nil {
		return nil, err
	}

	sheet, err := o.Reader.Read(f.task.Source, mapping.SkipFirstRow)
	if err != nil {
		return nil, err
	}

	o.setState(ValidatingColumns{FileID: f.task.ID})

	decision := o.Validator.Validate(sheet.Columns, mapping.Columns)
	if decision.NeedsDecision() {
		f.log.InfoContext(ctx, "file has unmapped columns", slog.Any("extra", decision.Extra))

		answer, err := o.await(ctx, AwaitingColumnDecision{FileID: f.task.ID, Decision: decision})
		if err != nil {
			return nil, err
		}

		if err := stopError(answer); err != nil {
			return nil, err
		}
	}

	rows := o.Validator.Project(sheet.Rows, sheet.Columns, mapping.Columns, mapping.DateColumn)

	var inserted []*domain.CustomerStub
	if mapping.CheckCustomer {
		o.setState(ResolvingCustomers{FileID: f.task.ID})

		inserted, err = o.Resolver.ResolveCustomers(ctx, rows, mapping)
		if err != nil {
			return nil, err
		}
	}

	f.logID, err = o.Ledger.Open(ctx, f.task.FileName, f.uploader, mapping.ID, domain.DistinctDates(rows, mapping.DateColumn))
	if err != nil {
		return nil, err
	}

	totalBatches := len(Partition(rows, o.Uploader.BatchSize()))
	o.setState(Uploading{FileID: f.task.ID, TotalBatches: totalBatches})

	outcome, err := o.Uploader.Upload(ctx, UploadRequest{
		Mapping:     mapping,
		UploadLogID: f.logID,
		Rows:        rows,
	}, o.classifier(f.task.ID), o.progressReporter(f.task.ID))
	if outcome != nil {
		outcome.NewCustomers = len(inserted)
	}

	return outcome, err
}

func (o *Orchestrator) finalize(ctx context.Context, f *fileRun, outcome *domain.UploadOutcome, failure error) {
	o.setState(Finalizing{FileID: f.task.ID})

	// ledger writes must land even when the run is being shut down
	ctx = context.WithoutCancel(ctx)

	if f.logID == "" {
		id, err := o.Ledger.Open(ctx, f.task.FileName, f.uploader, f.task.SheetMappingID, nil)
		if err != nil {
			f.log.ErrorContext(ctx, "failed to open upload log", slog.String("err", err.Error()))
		}
		f.logID = id
	}

	if f.logID != "" {
		if err := o.Ledger.Finalize(ctx, f.logID, outcome, failure); err != nil {
			f.log.ErrorContext(ctx, "failed to finalize upload log", slog.String("err", err.Error()))
		}
	}

	if failure != nil {
		f.log.ErrorContext(ctx, "file failed", slog.String("err", failure.Error()))

		_ = o.queue.Update(f.task.ID, func(t *domain.FileTask) {
			t.Status = domain.StatusError
			t.ErrorMessage = failure.Error()
			t.Summary = nil
			t.Source.Data = nil
		})
		return
	}

	summary := outcome.Summary()
	_ = o.queue.Update(f.task.ID, func(t *domain.FileTask) {
		t.Status = domain.StatusCompleted
		t.ProgressPercent = 100
		t.Summary = summary
		t.Source.Data = nil
	})

	o.mu.Lock()
	o.percent = 100
	o.mu.Unlock()

	f.log.InfoContext(ctx, "file completed",
		slog.Int("records", summary.RecordCount),
		slog.String("total_value", summary.TotalValue.String()),
		slog.Int("new_customers", summary.NewCustomers),
		slog.Int("new_products", summary.NewProducts),
		slog.Int("new_brands", summary.NewBrands),
	)

	if o.Maintainer != nil {
		if err := o.Maintainer.RunPostIngestMaintenance(ctx); err != nil {
			f.log.WarnContext(ctx, "post-ingest maintenance failed", slog.String("err", err.Error()))
		}
	}
}

func (o *Orchestrator) classifier(fileID string) ClassifyFunc {
	return func(ctx context.Context, batch int, newBrands []string) (map[string]string, error) {
		var total int
		o.mu.Lock()
		if s, ok := o.state.(Uploading); ok {
			total = s.TotalBatches
		}
		o.mu.Unlock()

		answer, err := o.await(ctx, AwaitingBrandClassification{FileID: fileID, Batch: batch, NewBrands: newBrands})
		if err != nil {
			return nil, err
		}

		if err := stopError(answer); err != nil {
			return nil, err
		}

		o.setState(Uploading{FileID: fileID, Batch: batch - 1, TotalBatches: total})

		return answer.(Classify).Classifications, nil
	}
}

func (o *Orchestrator) progressReporter(fileID string) ProgressFunc {
	return func(p domain.BatchProgress) {
		percent := 0
		if p.TotalRows > 0 {
			percent = p.ProcessedRows * 100 / p.TotalRows
		}

		o.mu.Lock()
		o.state = Uploading{FileID: fileID, Batch: p.Batch, TotalBatches: p.TotalBatches}
		o.percent = max(o.percent, percent)
		percent = o.percent
		o.mu.Unlock()

		_ = o.queue.Update(fileID, func(t *domain.FileTask) {
			t.ProgressPercent = max(t.ProgressPercent, percent)
		})
	}
}

// await parks the file in s until Resume delivers a decision.
func (o *Orchestrator) await(ctx context.Context, s State) (Decision, error) {
	o.mu.Lock()
	o.state = s
	o.awaiting = true
	o.mu.Unlock()

	select {
	case d := <-o.decisions:
		return d, nil

	case <-ctx.Done():
		o.mu.Lock()
		o.awaiting = false
		o.mu.Unlock()

		// drop an answer that raced with cancellation
		select {
		case <-o.decisions:
		default:
		}

		return nil, ctx.Err()
	}
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) knownSheet(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, ok := o.sheets[id]
	return ok
}

// sheetMapping returns a copy of the mapping with its column list freshly loaded.
func (o *Orchestrator) sheetMapping(ctx context.Context, id string) (*domain.SheetMapping, error) {
	o.mu.Lock()
	m, ok := o.sheets[id]
	o.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSheetMapping, id)
	}

	columns, err := o.Mappings.ColumnMapping(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load column mapping: %w", err)
	}

	mapping := *m
	mapping.Columns = columns

	return &mapping, nil
}

func stopError(d Decision) error {
	switch d.(type) {
	case Skip:
		return domain.ErrSkipFile
	case Cancel:
		return domain.ErrUploadCancelled
	}
	return nil
}
