package models

import "time"

type Verdict string
type AnalysisStatus string

const (
	VerdictConfirmed Verdict = "confirmed"
	VerdictLikely    Verdict = "likely"
	VerdictNone      Verdict = "none"

	StatusAnalyzing AnalysisStatus = "analyzing"
	StatusDone      AnalysisStatus = "done"
	StatusError     AnalysisStatus = "error"
)

// ServiceDetection is the per-competitor detection outcome. MatchedPatterns
// holds the pattern source strings in fingerprint-table order, not the order
// they appeared in the page.
type ServiceDetection struct {
	Name            string   `json:"name"`
	Label           string   `json:"label"`
	Score           int      `json:"score"`
	Verdict         Verdict  `json:"verdict"`
	MatchedPatterns []string `json:"matchedPatterns"`
}

// WebBuilderResult is the single-threshold platform detection outcome.
type WebBuilderResult struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Detected bool   `json:"detected"`
}

// PageMeta is the lightweight metadata pulled from the raw HTML.
type PageMeta struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	OgImage         *string `json:"ogImage"`
	HasOgTags       bool    `json:"hasOgTags"`
	MobileOptimized bool    `json:"mobileOptimized"`
}

// SiteAnalysis is one complete analysis of a prospect's website. A record is
// assembled once per request and never mutated afterwards except for Notes.
type SiteAnalysis struct {
	ID              string             `json:"id,omitempty"`
	URL             string             `json:"url"`
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	OgImage         *string            `json:"ogImage"`
	HasOgTags       bool               `json:"hasOgTags"`
	MobileOptimized bool               `json:"mobileOptimized"`
	LoadTimeMs      int64              `json:"loadTimeMs"`
	PageSize        int                `json:"pageSize"`
	Services        []ServiceDetection `json:"services"`
	WebBuilders     []string           `json:"webBuilders"`
	AllWebBuilders  []WebBuilderResult `json:"allWebBuilders"`
	SalesScore      int                `json:"salesScore"`
	Opportunities   []string           `json:"opportunities"`
	Notes           string             `json:"notes"`
	Status          AnalysisStatus     `json:"status"`
	ErrorMessage    string             `json:"errorMessage,omitempty"`
	CreatedAt       time.Time          `json:"createdAt,omitempty"`
	UpdatedAt       time.Time          `json:"updatedAt,omitempty"`
}

// NewErrorRecord builds the terminal record for a failed analysis. Upstream
// failures never produce a partial done record.
func NewErrorRecord(url, message string) SiteAnalysis {
	return SiteAnalysis{
		URL:           url,
		Services:       []ServiceDetection{},
		WebBuilders:    []string{},
		AllWebBuilders: []WebBuilderResult{},
		Opportunities:  []string{},
		Status:        StatusError,
		ErrorMessage:  message,
	}
}
