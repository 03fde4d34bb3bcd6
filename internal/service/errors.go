package service

import "errors"

// Persistence failures are surfaced to callers, unlike generation failures
// which degrade to fallback content. Conflict is transient and retried;
// unavailable means the completion was NOT recorded and the UI must not
// claim success.
var (
	ErrPersistenceConflict    = errors.New("transient persistence conflict")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)
