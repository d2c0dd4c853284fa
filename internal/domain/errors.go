package domain

import "errors"

var (
	ErrEmptyFile                = errors.New("file has no data rows")
	ErrUnsupportedFormat        = errors.New("unsupported file format")
	ErrUnknownSheetMapping      = errors.New("unknown sheet mapping")
	ErrFileNotFound             = errors.New("file not found")
	ErrFileBusy                 = errors.New("file is being processed")
	ErrRunInProgress            = errors.New("run already in progress")
	ErrNoPendingDecision        = errors.New("no decision is pending")
	ErrDecisionMismatch         = errors.New("decision does not match the pending question")
	ErrIncompleteClassification = errors.New("classification missing for pending brands")
	ErrUploadLogNotFound        = errors.New("upload log not found")
)

// Messages recorded on files the user stopped at a decision point.
const (
	MessageSkipFile        = "Skip File"
	MessageUploadCancelled = "Upload cancelled"
)

var (
	ErrSkipFile        = errors.New(MessageSkipFile)
	ErrUploadCancelled = errors.New(MessageUploadCancelled)
)
