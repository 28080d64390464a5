package analyzer

import (
	"fmt"
	"strings"

	"leadscout/internal/fingerprint"
	"leadscout/internal/models"
)

// Sales-readiness weights. The score answers one question for the sales
// team: how easy is this site to win? Platforms with an app-store install
// path raise it, an entrenched competitor lowers it, and a site already
// running our own widget is not an outbound target at all.
const (
	BaseScore = 30

	BonusImweb   = 20
	BonusCafe24  = 20
	BonusShopify = 10

	BonusNoCompetitor             = 20
	PenaltyPerConfirmedCompetitor = 10
	PenaltyOwnService             = 30

	BonusMobileViewport = 5
)

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func isPresent(v models.Verdict) bool {
	return v == models.VerdictConfirmed || v == models.VerdictLikely
}

// CalculateSalesScore folds detections, builder results and page metadata
// into the 0-100 sales score plus the ordered opportunity lines. Pure
// function: same inputs always produce the same score and the same line
// ordering.
func CalculateSalesScore(services []models.ServiceDetection, builders []models.WebBuilderResult, meta models.PageMeta) (int, []string) {
	score := BaseScore

	detected := func(name string) bool {
		for _, b := range builders {
			if b.Name == name && b.Detected {
				return true
			}
		}
		return false
	}
	usesImweb := detected("imweb")
	usesCafe24 := detected("cafe24")
	usesShopify := detected("shopify")

	// Builder bonuses are independent; a page matching several builder
	// signatures collects each bonus.
	if usesImweb {
		score += BonusImweb
	}
	if usesCafe24 {
		score += BonusCafe24
	}
	if usesShopify {
		score += BonusShopify
	}

	// Competitor presence. Only confirmed competitors penalise the score;
	// a likely-only competitor costs nothing here but still shows up in
	// the opportunity text below.
	var competitors []models.ServiceDetection
	var ownService *models.ServiceDetection
	for i := range services {
		if services[i].Name == fingerprint.OwnServiceName {
			ownService = &services[i]
			continue
		}
		competitors = append(competitors, services[i])
	}

	hasAnyCompetitor := false
	confirmedCount := 0
	var confirmedLabels, likelyLabels []string
	for _, c := range competitors {
		switch c.Verdict {
		case models.VerdictConfirmed:
			hasAnyCompetitor = true
			confirmedCount++
			confirmedLabels = append(confirmedLabels, c.Label)
		case models.VerdictLikely:
			hasAnyCompetitor = true
			likelyLabels = append(likelyLabels, c.Label)
		}
	}

	if !hasAnyCompetitor {
		score += BonusNoCompetitor
	} else {
		score -= confirmedCount * PenaltyPerConfirmedCompetitor
	}

	alreadyCustomer := ownService != nil && isPresent(ownService.Verdict)
	if alreadyCustomer {
		score -= PenaltyOwnService
	}

	if meta.MobileOptimized {
		score += BonusMobileViewport
	}

	score = clampScore(score)

	opportunities := []string{}
	if usesImweb {
		opportunities = append(opportunities, "아임웹 사용 중 - 코드앤버터 설치 용이 (앱스토어 제공)")
	}
	if usesCafe24 {
		opportunities = append(opportunities, "카페24 사용 중 - 코드앤버터 앱 설치로 간편 도입 가능")
	}
	if usesShopify {
		opportunities = append(opportunities, "Shopify 사용 중 - 스크립트 삽입으로 연동 가능")
	}

	if !hasAnyCompetitor {
		opportunities = append(opportunities, "경쟁사 온사이트 마케팅 솔루션 미사용 - 신규 도입 제안 적기")
	} else {
		if len(confirmedLabels) > 0 {
			opportunities = append(opportunities,
				fmt.Sprintf("경쟁사 서비스 사용 중: %s - 비교 제안 필요", strings.Join(confirmedLabels, ", ")))
		}
		if len(likelyLabels) > 0 {
			opportunities = append(opportunities,
				fmt.Sprintf("사용 가능성: %s - 확인 후 전환 제안", strings.Join(likelyLabels, ", ")))
		}
	}

	if alreadyCustomer {
		opportunities = append(opportunities, "코드앤버터 이미 사용 중 - 업셀링/컨설팅 제안")
	}

	if !meta.MobileOptimized {
		opportunities = append(opportunities, "모바일 뷰포트 미설정 - 반응형 팝업 솔루션 제안")
	}

	return score, opportunities
}
