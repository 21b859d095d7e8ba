package gir

import "errors"

// Error kinds per the pipeline's error handling design: configuration and
// bulk I/O errors are fatal for a phase; per-record parse errors and
// integrity violations are absorbed locally and never reach these sentinels'
// callers except as a bumped counter.
var (
	ErrConfiguration = errors.New("gir: configuration error")
	ErrIO            = errors.New("gir: I/O error")
	ErrParse         = errors.New("gir: parse error")
	ErrIntegrity     = errors.New("gir: integrity violation")
	ErrConcurrency   = errors.New("gir: worker pool failed to drain")
)
