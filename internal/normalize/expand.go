package normalize

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

// ExpandListing turns one accepted listing into its canonical rows:
// always one Base row built from listing-level attributes, then one
// Trim row per purchasable variant, in the variant's original order.
// Trim rows are copies of the Base with the variant weight, a slug
// re-derived from the base slug plus the variant title, and a
// RelatedTo back-reference to the Base slug.
func (r Rules) ExpandListing(l domain.Listing) []domain.Row {
	series, model := r.SplitSeriesModel(l.Title)

	tags := make([]string, len(l.Tags))
	for i, t := range l.Tags {
		tags[i] = strings.ToLower(t)
	}

	base := domain.Row{
		Slug:   slug.Make(series + " " + model),
		Series: series,
		Model:  model,
		Brand:  l.Vendor,
		Type:   l.ProductType,

		Magnetic: hasTag(tags, "magnetic"),
		Maglev:   anyTagContains(tags, "maglev"),
		Smart:    hasTag(tags, "bluetooth"),
		WCALegal: r.IsWCALegal(l.ProductType, l.Tags),

		ImageURL:      listingImageURL(l),
		Discontinued:  isDiscontinued(l),
		SurfaceFinish: r.DetectSurfaceFinish(tags),
		Stickered:     IsStickered(l),
		ReleaseDate:   releaseDate(l.PublishedAt),
		SizeMM:        r.DetectSizeMM(l),

		Status:      domain.RowStatusPending,
		SubmittedBy: domain.RowSubmittedBy,
		VersionType: domain.VersionBase,
	}

	rows := make([]domain.Row, 0, 1+len(l.Variants))
	rows = append(rows, base)

	for _, v := range l.Variants {
		trim := base
		trim.WeightGrams = v.Grams
		trim.RelatedTo = base.Slug
		trim.Slug = slug.Make(base.Slug + " " + v.Title)
		trim.VersionType = domain.VersionTrim
		trim.VersionName = v.Title
		if v.FeaturedImage != nil {
			trim.ImageURL = v.FeaturedImage.Src
		}
		rows = append(rows, trim)
	}

	return rows
}

// isDiscontinued reports whether every variant is out of stock. A
// listing without variants is never considered discontinued: there is
// no availability signal to act on.
func isDiscontinued(l domain.Listing) bool {
	if len(l.Variants) == 0 {
		return false
	}
	for _, v := range l.Variants {
		if v.Available {
			return false
		}
	}
	return true
}

// listingImageURL returns the first listing image with any query
// string (size hints, cache busters) stripped.
func listingImageURL(l domain.Listing) string {
	if len(l.Images) == 0 {
		return ""
	}
	src := l.Images[0].Src
	if i := strings.Index(src, "?"); i >= 0 {
		src = src[:i]
	}
	return src
}

// releaseDate truncates an ISO-8601 timestamp to its date portion.
func releaseDate(publishedAt string) string {
	if len(publishedAt) > 10 {
		return publishedAt[:10]
	}
	return publishedAt
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func anyTagContains(tags []string, substr string) bool {
	for _, t := range tags {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}
