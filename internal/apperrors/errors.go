package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrStorage indicates that a backing file could not be created, opened, locked or saved.
var ErrStorage = errors.New("storage error")

// ErrConnectivity indicates that the server could not be reached or did not answer in time.
// Callers may retry.
var ErrConnectivity = errors.New("connectivity error")

// ErrRemoteProcessing indicates that the server answered but failed to process the request.
var ErrRemoteProcessing = errors.New("remote processing error")
