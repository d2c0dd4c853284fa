package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RunSummary struct {
	Uploader        string          `json:"uploader"`
	TotalFiles      int             `json:"total_files"`
	SuccessfulFiles int             `json:"successful_files"`
	FailedFiles     int             `json:"failed_files"`
	TotalRecords    int             `json:"total_records"`
	TotalValue      decimal.Decimal `json:"total_value"`
	StartedAt       time.Time       `json:"started_at"`
	FinishedAt      time.Time       `json:"finished_at"`

	Files []*FileTask `json:"files"`
}

func NewRunSummary(uploader string, startedAt time.Time, files []*FileTask) *RunSummary {
	s := &RunSummary{
		Uploader:   uploader,
		TotalFiles: len(files),
		TotalValue: decimal.Zero,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Files:      files,
	}

	for _, f := range files {
		switch f.Status {
		case StatusCompleted:
			s.SuccessfulFiles++
			if f.Summary != nil {
				s.TotalRecords += f.Summary.RecordCount
				s.TotalValue = s.TotalValue.Add(f.Summary.TotalValue)
			}
		case StatusError:
			s.FailedFiles++
		}
	}

	return s
}
