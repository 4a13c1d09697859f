package normalize

import "strings"

// DetectSurfaceFinish returns the display name of the first surface
// finish keyword found in the tags, in tag order, or "" when none
// match. Tags are normalized (lowercased, "_" treated as "-", spaces
// stripped) before the containment test so "UV_Coated" and "uv coated"
// both resolve to "UV Coated".
func (r Rules) DetectSurfaceFinish(tags []string) string {
	for _, tag := range tags {
		key := strings.ToLower(tag)
		key = strings.ReplaceAll(key, "_", "-")
		key = strings.ReplaceAll(key, " ", "")
		for _, sf := range r.SurfaceFinishes {
			if strings.Contains(key, sf.Keyword) {
				return sf.Display
			}
		}
	}
	return ""
}
