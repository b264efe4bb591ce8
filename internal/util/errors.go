package util

import "errors"

var (
	ErrPermissionDenied         = errors.New("permission denied")
	ErrQuestionNotFound         = errors.New("question not found")
	ErrInvalidQuestion          = errors.New("invalid question")
	ErrTestPaperNotFound        = errors.New("test paper not found")
	ErrIDMismatch               = errors.New("path id does not match body id")
	ErrUnknownGenerationMethod  = errors.New("unknown generation method")
	ErrInvalidGenerationRequest = errors.New("invalid generation request")
)
