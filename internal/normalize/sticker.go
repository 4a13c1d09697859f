package normalize

import (
	"strings"

	"github.com/cubeindex/cubecatalog/internal/domain"
)

// IsStickered guesses whether a listing ships with stickers, from tags
// and variant titles. Priority order, first match wins:
//
//	"stickerless" present            -> false
//	"stickered", "black", "primary"  -> true
//	otherwise                        -> false
//
// "black" and "primary" are the usual stickerless base-shade names, so
// their presence implies a stickered/stickerless split where the
// default purchase is the stickered one. This is an approximation, not
// an authoritative attribute.
func IsStickered(l domain.Listing) bool {
	parts := append([]string{}, l.Tags...)
	for _, v := range l.Variants {
		parts = append(parts, v.Title)
	}
	text := strings.ToLower(strings.Join(parts, " "))

	if strings.Contains(text, "stickerless") {
		return false
	}
	if strings.Contains(text, "stickered") ||
		strings.Contains(text, "black") ||
		strings.Contains(text, "primary") {
		return true
	}
	return false
}
