package fingerprint

// Fingerprint is one piece of evidence for a named technology: a regex source
// evaluated case-sensitively against the raw HTML, and the weight it adds when
// present. The tables below are reference data shared with the sales team's
// detection sheet; pattern strings and weights must not be reworded.
type Fingerprint struct {
	Pattern string
	Score   int
}

// ServiceDef describes one onsite-marketing service and its verdict
// thresholds: score >= High is confirmed, score >= Mid is likely.
type ServiceDef struct {
	Name         string
	Label        string
	High         int
	Mid          int
	Fingerprints []Fingerprint
}

// WebBuilderDef describes one web-builder/e-commerce platform with a single
// detection threshold.
type WebBuilderDef struct {
	Name         string
	Threshold    int
	Fingerprints []Fingerprint
}

// OwnServiceName is our own product. It is scored and displayed like the
// others but excluded from the competitor-presence scoring rule.
const OwnServiceName = "codenbutter"

// Services in fixed evaluation order.
var Services = []ServiceDef{
	{
		Name: "ifdo", Label: "IFDO (이프두)", High: 60, Mid: 30,
		Fingerprints: []Fingerprint{
			{Pattern: `wlog\.ifdo\.co\.kr`, Score: 35},
			{Pattern: `(?:script|scr)\.ifdo\.co\.kr`, Score: 30},
			{Pattern: `jfullscript\.js`, Score: 25},
			{Pattern: `_NB_gs`, Score: 20},
			{Pattern: `_NB_MKTCD`, Score: 15},
			{Pattern: `Start Script for IFDO`, Score: 10},
			{Pattern: `ifdo\.co\.kr`, Score: 10},
		},
	},
	{
		Name: "datarize", Label: "Datarize (데이터라이즈)", High: 55, Mid: 30,
		Fingerprints: []Fingerprint{
			{Pattern: `(?:cdn\.datarize\.io|assets\.datarize\.ai)`, Score: 40},
			{Pattern: `genesis\.common\.min\.js`, Score: 25},
			{Pattern: `autoembed\.min\.js`, Score: 25},
			{Pattern: `_dtrConfig`, Score: 20},
			{Pattern: `["']pType["']`, Score: 10},
			{Pattern: `datarize\.(?:io|ai)`, Score: 15},
		},
	},
	{
		Name: "alphapush", Label: "AlphaPush (알파푸시)", High: 60, Mid: 30,
		Fingerprints: []Fingerprint{
			{Pattern: `static\.alphwidget\.com`, Score: 35},
			{Pattern: `alphapush_funnel\.js`, Score: 25},
			{Pattern: `alphapush_main\.js`, Score: 25},
			{Pattern: `alphapush_onsite\.js`, Score: 20},
			{Pattern: `/script/Push-Script/`, Score: 15},
			{Pattern: `alphacore_alpha_data\.js`, Score: 10},
			{Pattern: `alphapush`, Score: 10},
		},
	},
	{
		Name: "codenbutter", Label: "CodeNButter (코드앤버터)", High: 60, Mid: 30,
		Fingerprints: []Fingerprint{
			{Pattern: `buttr\.dev`, Score: 40},
			{Pattern: `butter\.js`, Score: 25},
			{Pattern: `CodenButter`, Score: 30},
			{Pattern: `CodenButter\s*\(\s*["']boot["']`, Score: 20},
			{Pattern: `siteId\s*:\s*["'][a-z]{10}["']`, Score: 15},
		},
	},
	{
		Name: "keepgrow", Label: "KeepGrow (킵그로우)", High: 55, Mid: 25,
		Fingerprints: []Fingerprint{
			{Pattern: `storage\.keepgrow\.com`, Score: 40},
			{Pattern: `kg-service-init`, Score: 30},
			{Pattern: `keepgrow-service`, Score: 25},
			{Pattern: `data-hosting="(?:imweb|cafe24)"`, Score: 10},
			{Pattern: `keepgrow\.com`, Score: 15},
		},
	},
}

// WebBuilders in fixed evaluation order. Threshold is uniform today but kept
// per-builder so individual tables can be tuned without touching the engine.
var WebBuilders = []WebBuilderDef{
	{
		Name: "cafe24", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `cafe24\.com`, Score: 30},
			{Pattern: `cafe24cdn\.com`, Score: 30},
			{Pattern: `ec-img\.cafe24img\.com`, Score: 40},
			{Pattern: `cafe24\.ssl`, Score: 25},
			{Pattern: `supertongue\.cafe24`, Score: 20},
			{Pattern: `echosting`, Score: 15},
			{Pattern: `EC_FRONT`, Score: 20},
		},
	},
	{
		Name: "imweb", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `imweb\.me`, Score: 40},
			{Pattern: `cdn\.imweb\.me`, Score: 35},
			{Pattern: `imwebme`, Score: 30},
			{Pattern: `iamweb`, Score: 25},
			{Pattern: `__im_data`, Score: 20},
			{Pattern: `imweb-font`, Score: 15},
		},
	},
	{
		Name: "shopify", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `cdn\.shopify\.com`, Score: 40},
			{Pattern: `Shopify\.theme`, Score: 35},
			{Pattern: `shopify-section`, Score: 25},
			{Pattern: `myshopify\.com`, Score: 30},
			{Pattern: `shopify_analytics`, Score: 20},
		},
	},
	{
		Name: "WordPress", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `wp-content`, Score: 35},
			{Pattern: `wp-includes`, Score: 30},
			{Pattern: `wp-json`, Score: 25},
			{Pattern: `wordpress`, Score: 20},
			{Pattern: `woocommerce`, Score: 15},
			{Pattern: `wp-emoji`, Score: 10},
		},
	},
	{
		Name: "sixshop", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `sixshop\.com`, Score: 40},
			{Pattern: `sixshop-cdn`, Score: 35},
			{Pattern: `six-shop`, Score: 25},
		},
	},
	{
		Name: "godomall", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `godo\.co\.kr`, Score: 40},
			{Pattern: `godomall`, Score: 35},
			{Pattern: `goodsno`, Score: 15},
			{Pattern: `gd_goods`, Score: 15},
		},
	},
	{
		Name: "makeshop", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `makeshop\.co\.kr`, Score: 40},
			{Pattern: `makeshop`, Score: 30},
			{Pattern: `shop_img\.makeshop`, Score: 25},
		},
	},
	{
		Name: "wix", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `static\.wixstatic\.com`, Score: 40},
			{Pattern: `wix\.com`, Score: 30},
			{Pattern: `_wix_browser_sess`, Score: 25},
			{Pattern: `wixpress`, Score: 20},
		},
	},
	{
		Name: "Naver SmartStore", Threshold: 40,
		Fingerprints: []Fingerprint{
			{Pattern: `smartstore\.naver\.com`, Score: 50},
			{Pattern: `shop\.naver\.com`, Score: 40},
			{Pattern: `shopping\.naver`, Score: 30},
		},
	},
}

// ServiceByName returns the definition for a service name, or nil.
func ServiceByName(name string) *ServiceDef {
	for i := range Services {
		if Services[i].Name == name {
			return &Services[i]
		}
	}
	return nil
}
