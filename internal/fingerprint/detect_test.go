package fingerprint

import (
	"reflect"
	"strings"
	"testing"

	"leadscout/internal/models"
)

func TestDetectEmptyTable(t *testing.T) {
	for _, html := range []string{"", "<html><body>anything</body></html>"} {
		score, matched := Detect(html, nil)
		if score != 0 {
			t.Errorf("empty table on %q: score %d, want 0", html, score)
		}
		if len(matched) != 0 {
			t.Errorf("empty table on %q: matched %v, want empty", html, matched)
		}
	}
}

func TestDetectAdditiveWeightsAndTableOrder(t *testing.T) {
	fps := []Fingerprint{
		{Pattern: `alpha`, Score: 10},
		{Pattern: `beta`, Score: 20},
		{Pattern: `gamma`, Score: 40},
	}
	// beta appears before alpha in the text; matched order must still
	// follow the table, and the absent gamma contributes nothing.
	score, matched := Detect("beta comes first, then alpha", fps)
	if score != 30 {
		t.Errorf("score = %d, want 30", score)
	}
	if !reflect.DeepEqual(matched, []string{"alpha", "beta"}) {
		t.Errorf("matched = %v, want table order [alpha beta]", matched)
	}
}

func TestDetectPresenceNotOccurrenceCount(t *testing.T) {
	fps := []Fingerprint{{Pattern: `marker`, Score: 15}}
	score, _ := Detect(strings.Repeat("marker ", 10), fps)
	if score != 15 {
		t.Errorf("score = %d, want 15 (presence only)", score)
	}
}

func TestDetectInvalidPatternSkipped(t *testing.T) {
	fps := []Fingerprint{
		{Pattern: `good`, Score: 10},
		{Pattern: `([`, Score: 50}, // does not compile
		{Pattern: `also-good`, Score: 5},
	}
	score, matched := Detect("good and also-good and ([ literally", fps)
	if score != 15 {
		t.Errorf("score = %d, want 15 (broken pattern must contribute 0)", score)
	}
	if !reflect.DeepEqual(matched, []string{"good", "also-good"}) {
		t.Errorf("matched = %v, broken pattern must be excluded", matched)
	}
}

func TestJudgeBoundaries(t *testing.T) {
	for i := range Services {
		svc := &Services[i]
		cases := []struct {
			score int
			want  models.Verdict
		}{
			{svc.Mid - 1, models.VerdictNone},
			{svc.Mid, models.VerdictLikely},
			{svc.High - 1, models.VerdictLikely},
			{svc.High, models.VerdictConfirmed},
		}
		for _, c := range cases {
			if got := Judge(c.score, svc); got != c.want {
				t.Errorf("%s: Judge(%d) = %s, want %s", svc.Name, c.score, got, c.want)
			}
		}
	}
}

func TestDetectServicesIfdoLikely(t *testing.T) {
	// wlog host (35) plus the bare domain (10) = 45: above mid 30, below
	// high 60.
	html := `<script src="https://wlog.ifdo.co.kr/j.js"></script>`
	services := DetectServices(html)

	if len(services) != len(Services) {
		t.Fatalf("got %d service results, want %d", len(services), len(Services))
	}
	if services[0].Name != "ifdo" {
		t.Fatalf("service order changed: first is %s", services[0].Name)
	}

	ifdo := services[0]
	if ifdo.Score != 45 {
		t.Errorf("ifdo score = %d, want 45", ifdo.Score)
	}
	if ifdo.Verdict != models.VerdictLikely {
		t.Errorf("ifdo verdict = %s, want likely", ifdo.Verdict)
	}
	if !reflect.DeepEqual(ifdo.MatchedPatterns, []string{`wlog\.ifdo\.co\.kr`, `ifdo\.co\.kr`}) {
		t.Errorf("ifdo matched = %v", ifdo.MatchedPatterns)
	}

	for _, s := range services[1:] {
		if s.Verdict != models.VerdictNone {
			t.Errorf("%s verdict = %s on ifdo-only page, want none", s.Name, s.Verdict)
		}
	}
}

func TestDetectServicesCaseSensitive(t *testing.T) {
	// Fingerprints are case-sensitive: the lowercased vendor name must not
	// trip the CodenButter pattern.
	services := DetectServices("codenbutter mentioned in plain text")
	for _, s := range services {
		if s.Name == "codenbutter" && s.Score != 0 {
			t.Errorf("codenbutter score = %d on lowercase text, want 0", s.Score)
		}
	}
}

func TestDetectWebBuildersShopify(t *testing.T) {
	html := `<link href="https://cdn.shopify.com/s/files/theme.css"><script>Shopify.theme = {};</script>`
	builders := DetectWebBuilders(html)

	if len(builders) != len(WebBuilders) {
		t.Fatalf("got %d builder results, want %d", len(builders), len(WebBuilders))
	}

	for _, b := range builders {
		switch b.Name {
		case "shopify":
			if b.Score != 75 {
				t.Errorf("shopify score = %d, want 75 (40+35)", b.Score)
			}
			if !b.Detected {
				t.Error("shopify should be detected at 75 >= 40")
			}
		default:
			if b.Detected {
				t.Errorf("%s detected on shopify-only page", b.Name)
			}
		}
	}
}

func TestBuilderBelowThresholdNotDetected(t *testing.T) {
	// A single weak WordPress marker (wp-emoji, 10) stays below 40.
	builders := DetectWebBuilders(`<script src="/wp-emoji.js"></script>`)
	for _, b := range builders {
		if b.Name == "WordPress" {
			if b.Score != 10 || b.Detected {
				t.Errorf("WordPress score=%d detected=%v, want 10/false", b.Score, b.Detected)
			}
		}
	}
}

func TestServiceTablesWellFormed(t *testing.T) {
	for _, svc := range Services {
		if svc.High <= svc.Mid {
			t.Errorf("%s: high %d must exceed mid %d", svc.Name, svc.High, svc.Mid)
		}
		if len(svc.Fingerprints) == 0 {
			t.Errorf("%s: empty fingerprint table", svc.Name)
		}
	}
	if ServiceByName(OwnServiceName) == nil {
		t.Fatalf("own service %q missing from table", OwnServiceName)
	}
	if len(WebBuilders) != 9 {
		t.Errorf("builder table has %d entries, want 9", len(WebBuilders))
	}
}
