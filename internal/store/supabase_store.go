package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

// SupabaseStore upserts rows through the Supabase REST (PostgREST)
// endpoint: POST /rest/v1/cube_models?on_conflict=slug with the
// merge-duplicates resolution header.
type SupabaseStore struct {
	baseURL string
	apiKey  string
	client  *http.Client

	// KeyRole is the role claim carried by the service key, surfaced
	// for startup logging ("anon" keys cannot upsert past RLS).
	KeyRole string
}

// NewSupabaseStore validates the service key before any network call.
// Supabase keys are JWTs; the claims are inspected unverified (the
// server verifies the signature, we only sanity-check locally) to
// reject expired keys and expose the role.
func NewSupabaseStore(baseURL, apiKey string) (*SupabaseStore, error) {
	if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("supabase: url and key are required")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(apiKey, claims); err != nil {
		return nil, fmt.Errorf("supabase: key is not a valid JWT: %w", err)
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if time.Now().After(exp.Time) {
			return nil, fmt.Errorf("supabase: service key expired at %s", exp.Time.UTC().Format(time.RFC3339))
		}
	}

	role, _ := claims["role"].(string)

	return &SupabaseStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		KeyRole: role,
	}, nil
}

func (s *SupabaseStore) UpsertRows(ctx context.Context, rows []domain.Row) error {
	for _, batch := range Batches(rows, DefaultBatchSize) {
		if err := s.upsertBatch(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (s *SupabaseStore) upsertBatch(ctx context.Context, rows []domain.Row) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	url := s.baseURL + "/rest/v1/cube_models?on_conflict=slug"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("supabase: upsert failed with %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return nil
}
