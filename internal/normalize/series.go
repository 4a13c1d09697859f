package normalize

import "strings"

// ExtractSeries derives the series name from a listing title:
// "GAN 356 M Pro - Limited Edition" -> "GAN 356".
//
// Parenthesized substrings are stripped, anything after a " -" suffix
// is dropped, then tokens accumulate until the first size token
// ("3x3"), version marker ("v2", "pro", "plus", "m") or noise word.
func (r Rules) ExtractSeries(title string) string {
	clean := parensPattern.ReplaceAllString(title, "")

	if i := strings.Index(clean, " -"); i >= 0 {
		clean = clean[:i]
	}

	var words []string
	for _, w := range strings.Fields(clean) {
		lw := strings.ToLower(w)
		if sizePattern.MatchString(lw) || versionPattern.MatchString(lw) {
			break
		}
		if _, noise := r.NoiseWords[lw]; noise {
			break
		}
		words = append(words, w)
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// SplitSeriesModel returns the series plus the remaining model text,
// i.e. the title with the series substring removed once. When the
// series consumes the entire title the model is empty.
func (r Rules) SplitSeriesModel(title string) (series, model string) {
	series = r.ExtractSeries(title)
	model = title
	if series != "" {
		model = strings.Replace(title, series, "", 1)
	}
	return series, strings.TrimSpace(model)
}
