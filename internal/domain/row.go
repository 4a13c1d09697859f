package domain

type VersionType string

const (
	VersionBase VersionType = "Base"
	VersionTrim VersionType = "Trim"
)

// Fixed provenance values stamped onto every row the pipeline emits.
const (
	RowStatusPending = "Pending"
	RowSubmittedBy   = "CubeIndex"
)

// Row is one canonical cube_models record. Slug is the globally unique
// merge key: it is a deterministic function of the listing text, so the
// same semantic product always lands on the same row across runs and
// across independently scraped stores.
type Row struct {
	Slug   string `json:"slug"`
	Series string `json:"series"`
	Model  string `json:"model"`
	Brand  string `json:"brand"`
	Type   string `json:"type"`

	Magnetic bool `json:"magnetic"`
	Maglev   bool `json:"maglev"`
	Smart    bool `json:"smart"`
	WCALegal bool `json:"wca_legal"`

	ImageURL      string  `json:"image_url"`
	Discontinued  bool    `json:"discontinued"`
	SurfaceFinish string  `json:"surface_finish,omitempty"`
	Stickered     bool    `json:"stickered"`
	ReleaseDate   string  `json:"release_date"`
	SizeMM        float64 `json:"size"`
	WeightGrams   int     `json:"weight"`

	Rating      int    `json:"rating"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
	SubmittedBy string `json:"submitted_by"`

	VersionType VersionType `json:"version_type"`
	VersionName string      `json:"version_name"`

	// RelatedTo carries the Base row's slug on Trim rows. It is a weak
	// back-reference, not an ownership relation; empty on Base rows.
	RelatedTo string `json:"related_to,omitempty"`
}
