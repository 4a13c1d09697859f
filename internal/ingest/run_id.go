package ingest

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRunID creates a random run id for correlating log lines of one
// import run. Format: "run_" + 16 bytes hex (32 chars)
func NewRunID() (string, error) {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return "run_" + hex.EncodeToString(b), nil
}
