package fingerprint

import (
	"regexp"

	"leadscout/internal/models"
)

// Detect evaluates a fingerprint table against raw HTML. Every fingerprint is
// tried in table order; a present pattern adds its weight and its source
// string to the matched list. Presence only; occurrence counts don't matter.
// A pattern that fails to compile contributes nothing and must never abort
// the scan.
func Detect(html string, fps []Fingerprint) (int, []string) {
	score := 0
	matched := []string{}
	for _, fp := range fps {
		re, err := regexp.Compile(fp.Pattern)
		if err != nil {
			// invalid pattern, skip
			continue
		}
		if re.MatchString(html) {
			score += fp.Score
			matched = append(matched, fp.Pattern)
		}
	}
	return score, matched
}

// Judge maps an accumulated score to the two-tier verdict for a service.
func Judge(score int, svc *ServiceDef) models.Verdict {
	if score >= svc.High {
		return models.VerdictConfirmed
	}
	if score >= svc.Mid {
		return models.VerdictLikely
	}
	return models.VerdictNone
}

// DetectServices runs every service table against the HTML in table order.
func DetectServices(html string) []models.ServiceDetection {
	out := make([]models.ServiceDetection, 0, len(Services))
	for i := range Services {
		svc := &Services[i]
		score, matched := Detect(html, svc.Fingerprints)
		out = append(out, models.ServiceDetection{
			Name:            svc.Name,
			Label:           svc.Label,
			Score:           score,
			Verdict:         Judge(score, svc),
			MatchedPatterns: matched,
		})
	}
	return out
}

// DetectWebBuilders scores every builder table. Callers get the full
// breakdown; detected means the score reached the builder's threshold.
func DetectWebBuilders(html string) []models.WebBuilderResult {
	out := make([]models.WebBuilderResult, 0, len(WebBuilders))
	for i := range WebBuilders {
		b := &WebBuilders[i]
		score, _ := Detect(html, b.Fingerprints)
		out = append(out, models.WebBuilderResult{
			Name:     b.Name,
			Score:    score,
			Detected: score >= b.Threshold,
		})
	}
	return out
}
