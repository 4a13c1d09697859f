package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

type Disposition string

const (
	DispositionNew       Disposition = "new"
	DispositionChanged   Disposition = "changed"
	DispositionUnchanged Disposition = "unchanged"
)

type DeltaReport struct {
	New       int `json:"new"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
	Removed   int `json:"removed"`
}

// HashRow produces a stable content hash of one canonical row. Row has
// a fixed field order and no map-typed fields, so plain JSON marshal is
// already deterministic.
func HashRow(r domain.Row) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// ComputeDisposition classifies a row against its previous content
// hash. An empty previous hash means the slug was not in the last run.
func ComputeDisposition(previousHash, currentHash string) Disposition {
	if previousHash == "" {
		return DispositionNew
	}
	if previousHash == currentHash {
		return DispositionUnchanged
	}
	return DispositionChanged
}

// Delta compares the current row set against the previous run's dump.
// Reporting only: dispositions never gate the upsert, they just tell
// the operator what this run actually moved.
func Delta(previous, current []domain.Row) (DeltaReport, error) {
	prevHashes := make(map[string]string, len(previous))
	for _, r := range previous {
		h, err := HashRow(r)
		if err != nil {
			return DeltaReport{}, err
		}
		prevHashes[r.Slug] = h
	}

	var rep DeltaReport
	seen := make(map[string]struct{}, len(current))

	for _, r := range current {
		h, err := HashRow(r)
		if err != nil {
			return DeltaReport{}, err
		}
		seen[r.Slug] = struct{}{}

		switch ComputeDisposition(prevHashes[r.Slug], h) {
		case DispositionNew:
			rep.New++
		case DispositionChanged:
			rep.Changed++
		case DispositionUnchanged:
			rep.Unchanged++
		}
	}

	for slug := range prevHashes {
		if _, ok := seen[slug]; !ok {
			rep.Removed++
		}
	}

	return rep, nil
}
