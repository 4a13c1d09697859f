package pipeline

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cubeindex/cubecatalog/internal/domain"
	"github.com/cubeindex/cubecatalog/internal/ingest"
	"github.com/cubeindex/cubecatalog/internal/normalize"
)

type FileStat struct {
	Name            string   `json:"name"`
	ListingsScanned int      `json:"listings_scanned"`
	Skipped         int      `json:"skipped"`
	Rows            int      `json:"rows"`
	UnknownKeys     []string `json:"unknown_keys,omitempty"`
}

type Summary struct {
	FilesScanned    int `json:"files_scanned"`
	ListingsScanned int `json:"listings_scanned"`
	Skipped         int `json:"skipped"`
	CandidateRows   int `json:"candidate_rows"`
	UniqueRows      int `json:"unique_rows"`
}

type Output struct {
	Summary Summary           `json:"summary"`
	Files   []FileStat        `json:"files"`
	Issues  []ingest.RowIssue `json:"issues,omitempty"`
	Rows    []domain.Row      `json:"-"`
}

// Driver sequences a full import run: every *_products.json under the
// stores directory, in lexical filename order, is parsed, filtered and
// expanded; the accumulated rows are deduplicated once at the end.
//
// The file order is a contract, not an accident: deduplication is
// first-occurrence-wins, so reordering the inputs would silently change
// which store's row survives a slug collision.
type Driver struct {
	Rules  normalize.Rules
	Logger *log.Logger
}

func (d Driver) Run(dir string) (Output, error) {
	files, err := sourceFiles(dir)
	if err != nil {
		return Output{}, err
	}

	var out Output
	var rows []domain.Row

	for _, path := range files {
		stat, fileRows, err := d.runFile(path)
		if err != nil {
			// One unreadable catalog must not sink the whole run.
			d.logf("skipping %s: %v", filepath.Base(path), err)
			continue
		}

		rows = append(rows, fileRows...)

		out.Files = append(out.Files, stat)
		out.Summary.FilesScanned++
		out.Summary.ListingsScanned += stat.ListingsScanned
		out.Summary.Skipped += stat.Skipped

		d.logf("%-32s %4d listings, %4d rows", stat.Name, stat.ListingsScanned, stat.Rows)
	}

	out.Summary.CandidateRows = len(rows)
	out.Rows = normalize.Deduplicate(rows)
	out.Summary.UniqueRows = len(out.Rows)
	out.Issues = ingest.InspectRows(out.Rows)

	return out, nil
}

func (d Driver) runFile(path string) (FileStat, []domain.Row, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return FileStat{}, nil, err
	}

	res, err := ingest.ParseListingsAllowUnknown(body)
	if err != nil {
		return FileStat{}, nil, err
	}

	stat := FileStat{
		Name:            filepath.Base(path),
		ListingsScanned: len(res.Listings),
		UnknownKeys:     res.Warnings.UnknownKeys,
	}

	var rows []domain.Row
	for _, l := range res.Listings {
		if d.Rules.ShouldSkip(l.ProductType) {
			stat.Skipped++
			continue
		}
		rows = append(rows, d.Rules.ExpandListing(l)...)
	}
	stat.Rows = len(rows)

	return stat, rows, nil
}

func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), "_products.json") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

func (d Driver) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}
