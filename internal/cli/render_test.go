package cli

import (
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg,pdf,json", []string{"svg", "pdf", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "figures/fig.toml", "figures/fig"},
		{"strip format extension", "out.svg", "fig.toml", "out"},
		{"keep other extension", "out.backup", "fig.toml", "out.backup"},
		{"plain output", "out", "fig.toml", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		base        string
		format      string
		formatCount int
		want        string
	}{
		{"explicit single output", "custom.svg", "custom", "svg", 1, "custom.svg"},
		{"single output without extension", "custom", "custom", "png", 1, "custom.png"},
		{"derived single", "", "fig", "svg", 1, "fig.svg"},
		{"multiple formats share base", "out.svg", "out", "pdf", 2, "out.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.base, tt.format, tt.formatCount)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateByName(t *testing.T) {
	if tmpl := templateByName("single"); tmpl == nil || tmpl.Name != "single" {
		t.Errorf("templateByName(single) = %v", tmpl)
	}
	if tmpl := templateByName("nope"); tmpl != nil {
		t.Errorf("templateByName(nope) = %v, want nil", tmpl)
	}
}
