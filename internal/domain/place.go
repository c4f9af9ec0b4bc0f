// Package domain contains the core data types for the travel recommendation service.
// This package depends only on google/uuid and is imported by every other
// internal package (repo, service, render, ui, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxResults is the maximum number of places a single search returns.
const MaxResults = 6

// Place is a single displayable destination: a beach, a temple, or a city.
// TimeZone is an IANA zone name and may be empty.
type Place struct {
	Name        string `json:"name" yaml:"name"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
	Description string `json:"description" yaml:"description"`
	TimeZone    string `json:"timeZone,omitempty" yaml:"timeZone,omitempty"`
}

// Country groups cities. Only Cities is used when searching; Name is kept
// so the Postgres source can round-trip the document.
type Country struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Cities []Place `json:"cities" yaml:"cities"`
}

// Dataset is the complete static travel document loaded at startup.
// It is treated as immutable once loaded.
type Dataset struct {
	Beaches   []Place   `json:"beaches" yaml:"beaches"`
	Temples   []Place   `json:"temples" yaml:"temples"`
	Countries []Country `json:"countries" yaml:"countries"`
}

// Snapshot is a loaded Dataset together with its identity.
// Version changes every time a process loads a dataset.
type Snapshot struct {
	Version  uuid.UUID
	LoadedAt time.Time
	Dataset  Dataset
}
