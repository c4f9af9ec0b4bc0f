package domain

import "errors"

// ErrNotLoaded is returned while the dataset load is still in flight.
// Callers should present a "still loading" state rather than empty results.
var ErrNotLoaded = errors.New("dataset not loaded")

// ErrLoadFailed is returned after the one-time dataset load has failed.
// The underlying cause is wrapped alongside it.
var ErrLoadFailed = errors.New("dataset load failed")

// ErrAlreadyLoaded is returned when a second load is attempted.
// The dataset is written exactly once per process.
var ErrAlreadyLoaded = errors.New("dataset already loaded")

// ErrValidation is returned when a dataset document is malformed or a stored
// row breaks the catalog shape (a city without a country, an unknown kind).
var ErrValidation = errors.New("validation error")
