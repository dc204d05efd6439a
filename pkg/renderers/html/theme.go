package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeContext is the template-facing view of a theme configuration. The
// stylesheet URL is resolved in Go so templates never see the resolver
// function.
type themeContext struct {
	Name       string            `json:"name,omitempty"`
	Variant    string            `json:"variant,omitempty"`
	Tokens     map[string]string `json:"tokens,omitempty"`
	CSSVars    map[string]string `json:"css_vars,omitempty"`
	Stylesheet string            `json:"stylesheet,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  copyStringMap(cfg.Tokens),
		CSSVars: copyStringMap(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(StylesheetName)
	}
	return ctx
}

// stylesheet combines the embedded default styles with the theme's CSS
// variable block.
func stylesheet(cfg *theme.RendererConfig) string {
	styles := defaultStylesheet()
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return styles
	}
	vars := cssVarsStyle(cfg.CSSVars)
	if styles == "" {
		return vars
	}
	return styles + "\n" + vars
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
