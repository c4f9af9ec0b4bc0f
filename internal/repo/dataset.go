// Package repo contains the dataset sources for the travel recommendation service.
// Each source has its own file and implements DatasetRepo.
// No business logic lives here, only I/O and document decoding.
package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Abdullahever182/travel-recomend/internal/domain"
)

// DatasetRepo loads the complete travel dataset.
// The service layer depends on this interface, not on a concrete source,
// which allows the catalog to be unit-tested with a mock.
type DatasetRepo interface {
	// Load reads and decodes the whole dataset. Implementations must not
	// return a partially decoded dataset alongside an error.
	Load(ctx context.Context) (domain.Dataset, error)
}

// fileRepo reads the dataset from a local JSON or YAML document.
type fileRepo struct {
	path string
}

// NewFileRepo constructs a DatasetRepo reading the document at path.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func NewFileRepo(path string) DatasetRepo {
	return &fileRepo{path: path}
}

func (r *fileRepo) Load(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.FileRepo.Load: %w", err)
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.FileRepo.Load: %w", err)
	}

	var ds domain.Dataset
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".yaml", ".yml":
		ds, err = decodeYAML(raw)
	default:
		ds, err = decodeJSON(bytes.NewReader(raw))
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.FileRepo.Load: %s: %w", r.path, err)
	}
	return ds, nil
}

// httpRepo fetches the dataset document over HTTP.
type httpRepo struct {
	url    string
	client *http.Client
}

// NewHTTPRepo constructs a DatasetRepo that GETs the JSON document at url.
// A nil client falls back to http.DefaultClient.
func NewHTTPRepo(url string, client *http.Client) DatasetRepo {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpRepo{url: url, client: client}
}

func (r *httpRepo) Load(ctx context.Context) (domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.HTTPRepo.Load: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.HTTPRepo.Load: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Dataset{}, fmt.Errorf("repo.HTTPRepo.Load: unexpected status %d", resp.StatusCode)
	}

	ds, err := decodeJSON(resp.Body)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.HTTPRepo.Load: %w", err)
	}
	return ds, nil
}

// decodeJSON decodes a dataset document. Unknown fields (such as a
// country's id) are ignored.
func decodeJSON(r io.Reader) (domain.Dataset, error) {
	var ds domain.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: decode json: %w", domain.ErrValidation, err)
	}
	return ds, nil
}

func decodeYAML(raw []byte) (domain.Dataset, error) {
	var ds domain.Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: decode yaml: %w", domain.ErrValidation, err)
	}
	return ds, nil
}
