package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

func TestDumpRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rows.json")

	rows := []domain.Row{
		{Slug: "gan-356-m", Series: "GAN 356", Model: "M", SizeMM: 56, VersionType: domain.VersionBase},
		{Slug: "gan-356-m-black", RelatedTo: "gan-356-m", VersionType: domain.VersionTrim, VersionName: "Black"},
	}

	if err := WriteDump(path, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ReadDump(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, rows)
	}
}

func TestWriteDump_HumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.json")

	if err := WriteDump(path, []domain.Row{{Slug: "a"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(b), "\n  ") {
		t.Fatalf("dump must be indented for manual review")
	}
}

func TestReadDump_Missing(t *testing.T) {
	if _, err := ReadDump(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing dump")
	}
}
