package analyzer

import "testing"

func strOrNil(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestExtractMeta(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		title    string
		desc     string
		ogImage  string
		ogTags   bool
		viewport bool
	}{
		{
			name: "full head",
			html: `<html><head>
				<title> Acme Store </title>
				<meta name="description" content="Best widgets in town">
				<meta property="og:image" content="https://acme.example/og.png">
				<meta property="og:title" content="Acme">
				<meta name="viewport" content="width=device-width, initial-scale=1">
			</head></html>`,
			title:    "Acme Store",
			desc:     "Best widgets in town",
			ogImage:  "https://acme.example/og.png",
			ogTags:   true,
			viewport: true,
		},
		{
			name: "attribute order reversed",
			html: `<meta content="reversed desc" name="description">
				<meta content="https://x.example/i.jpg" property="og:image">`,
			title:   "<nil>",
			desc:    "reversed desc",
			ogImage: "https://x.example/i.jpg",
			ogTags:  true,
		},
		{
			name:  "uppercase tags still match",
			html:  `<TITLE>Shouty</TITLE><META NAME="description" CONTENT="loud">`,
			title: "Shouty",
			desc:  "loud",
		},
		{
			name:  "empty title is absent",
			html:  `<title></title><p>no meta here</p>`,
			title: "<nil>",
			desc:  "<nil>",
		},
		{
			name:  "first title wins",
			html:  `<title>first</title><title>second</title>`,
			title: "first",
			desc:  "<nil>",
		},
		{
			name:     "single quotes",
			html:     `<meta name='description' content='quoted'><meta name='viewport' content='width=device-width'>`,
			desc:     "quoted",
			title:    "<nil>",
			viewport: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ExtractMeta(tt.html)
			if tt.title == "" {
				tt.title = "<nil>"
			}
			if tt.desc == "" {
				tt.desc = "<nil>"
			}
			if tt.ogImage == "" {
				tt.ogImage = "<nil>"
			}
			if got := strOrNil(m.Title); got != tt.title {
				t.Errorf("title = %q, want %q", got, tt.title)
			}
			if got := strOrNil(m.Description); got != tt.desc {
				t.Errorf("description = %q, want %q", got, tt.desc)
			}
			if got := strOrNil(m.OgImage); got != tt.ogImage {
				t.Errorf("ogImage = %q, want %q", got, tt.ogImage)
			}
			if m.HasOgTags != tt.ogTags {
				t.Errorf("hasOgTags = %v, want %v", m.HasOgTags, tt.ogTags)
			}
			if m.MobileOptimized != tt.viewport {
				t.Errorf("mobileOptimized = %v, want %v", m.MobileOptimized, tt.viewport)
			}
		})
	}
}
