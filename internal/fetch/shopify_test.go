package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

func TestClient_FetchAllStopsOnEmptyPage(t *testing.T) {
	pages := map[int]string{
		1: `{"products": [{"title": "A"}, {"title": "B"}]}`,
		2: `{"products": [{"title": "C"}]}`,
		3: `{"products": []}`,
	}

	var requested []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != strconv.Itoa(PageLimit) {
			t.Errorf("limit = %q, want %d", got, PageLimit)
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		requested = append(requested, page)
		fmt.Fprint(w, pages[page])
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.Delay = 0

	products, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if len(requested) != 3 || requested[2] != 3 {
		t.Fatalf("unexpected page walk: %v", requested)
	}
}

func TestClient_FetchAllKeepsPartialOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			fmt.Fprint(w, `{"products": [{"title": "A"}]}`)
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.Delay = 0

	products, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatalf("expected error from page 2")
	}
	if len(products) != 1 {
		t.Fatalf("expected the first page to survive, got %d products", len(products))
	}
}

func TestStoreURL(t *testing.T) {
	if _, err := StoreURL("scs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := StoreURL("not-a-store"); err == nil {
		t.Fatalf("expected error for unknown store")
	}
}
