package analyzer

import (
	"regexp"
	"strings"

	"leadscout/internal/models"
)

// Page metadata is pulled with single-pass pattern matching over the raw
// text. No parse tree: the pages are arbitrary third-party HTML and these
// five signals survive malformed markup better as patterns. First match
// wins, tag/attribute matching is case-insensitive, and the meta patterns
// tolerate both attribute orders (name-before-content and the reverse).
var (
	titleRe            = regexp.MustCompile(`(?i)<title[^>]*>([^<]*)</title>`)
	descNameFirstRe    = regexp.MustCompile(`(?i)<meta[^>]*name=["']description["'][^>]*content=["']([^"']*)["']`)
	descContentFirstRe = regexp.MustCompile(`(?i)<meta[^>]*content=["']([^"']*)["'][^>]*name=["']description["']`)
	ogImgPropFirstRe   = regexp.MustCompile(`(?i)<meta[^>]*property=["']og:image["'][^>]*content=["']([^"']*)["']`)
	ogImgContFirstRe   = regexp.MustCompile(`(?i)<meta[^>]*content=["']([^"']*)["'][^>]*property=["']og:image["']`)
	ogTagsRe           = regexp.MustCompile(`(?i)property=["']og:`)
	viewportRe         = regexp.MustCompile(`(?i)name=["']viewport["']`)
)

func firstCapture(html string, res ...*regexp.Regexp) *string {
	for _, re := range res {
		if m := re.FindStringSubmatch(html); m != nil {
			v := strings.TrimSpace(m[1])
			if v == "" {
				return nil
			}
			return &v
		}
	}
	return nil
}

// ExtractMeta pulls title, description, og:image and the two boolean
// hygiene signals from the raw HTML.
func ExtractMeta(html string) models.PageMeta {
	return models.PageMeta{
		Title:           firstCapture(html, titleRe),
		Description:     firstCapture(html, descNameFirstRe, descContentFirstRe),
		OgImage:         firstCapture(html, ogImgPropFirstRe, ogImgContFirstRe),
		HasOgTags:       ogTagsRe.MatchString(html),
		MobileOptimized: viewportRe.MatchString(html),
	}
}
