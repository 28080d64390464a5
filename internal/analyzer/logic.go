package analyzer

import (
	"context"
	"sync"
	"time"

	"leadscout/internal/cache"
	"leadscout/internal/fetch"
	"leadscout/internal/fingerprint"
	"leadscout/internal/models"
)

const resultCacheTTL = 10 * time.Minute

// Analyze runs the full pipeline against the default fetch client.
func Analyze(ctx context.Context, rawURL string) (models.SiteAnalysis, error) {
	return AnalyzeWith(ctx, fetch.Default, rawURL)
}

// AnalyzeWith fetches the target page and produces one complete analysis
// record. Each call is independent and stateless; the only shared state is
// the read-through result cache keyed by the normalized URL.
func AnalyzeWith(ctx context.Context, client *fetch.Client, rawURL string) (models.SiteAnalysis, error) {
	target := fetch.Normalize(rawURL)

	cacheKey := "site:" + target
	if cached, ok := cache.AnalysisCache.Get(cacheKey); ok {
		return cached.(models.SiteAnalysis), nil
	}

	page, err := client.Fetch(ctx, target)
	if err != nil {
		return models.SiteAnalysis{}, err
	}

	// The three analysis stages read the same immutable HTML and are
	// independent, so fan them out the same way the fetch probes would be.
	var (
		services []models.ServiceDetection
		builders []models.WebBuilderResult
		meta     models.PageMeta
		mu       sync.Mutex
		wg       sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		s := fingerprint.DetectServices(page.Body)
		mu.Lock()
		services = s
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		b := fingerprint.DetectWebBuilders(page.Body)
		mu.Lock()
		builders = b
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		m := ExtractMeta(page.Body)
		mu.Lock()
		meta = m
		mu.Unlock()
	}()

	wg.Wait()

	salesScore, opportunities := CalculateSalesScore(services, builders, meta)

	detectedNames := []string{}
	for _, b := range builders {
		if b.Detected {
			detectedNames = append(detectedNames, b.Name)
		}
	}

	record := models.SiteAnalysis{
		URL:             page.URL,
		Title:           meta.Title,
		Description:     meta.Description,
		OgImage:         meta.OgImage,
		HasOgTags:       meta.HasOgTags,
		MobileOptimized: meta.MobileOptimized,
		LoadTimeMs:      page.LoadTimeMs,
		PageSize:        page.PageSize,
		Services:        services,
		WebBuilders:     detectedNames,
		AllWebBuilders:  builders,
		SalesScore:      salesScore,
		Opportunities:   opportunities,
		Status:          models.StatusDone,
	}

	cache.AnalysisCache.Set(cacheKey, record, resultCacheTTL)
	return record, nil
}
