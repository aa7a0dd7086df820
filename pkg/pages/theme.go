package pages

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeSelector resolves a named theme and variant to a concrete selection.
// It matches the go-theme registry contract so callers can plug a full
// registry in; the default assembler uses the embedded GOV.UK manifest.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

const defaultThemeName = "govuk"

// defaultManifest is the embedded GOV.UK-flavoured theme: brand tokens plus
// the two runtime assets every compiled page references.
func defaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    defaultThemeName,
		Version: FrontendVersion(),
		Tokens: map[string]string{
			"brand":       "#1d70b8",
			"text":        "#0b0c0c",
			"error":       "#d4351c",
			"focus":       "#ffdd00",
			"button":      "#00703c",
			"button-text": "#ffffff",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				"stylesheet": StylesheetName,
				"validation": ValidationScriptName,
			},
		},
	}
}

type manifestSelector struct {
	manifest *theme.Manifest
}

func (s manifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name != "" && name != s.manifest.Name {
		return nil, fmt.Errorf("pages: unknown theme %q", name)
	}
	return &theme.Selection{
		Theme:    s.manifest.Name,
		Variant:  variant,
		Manifest: s.manifest,
	}, nil
}

// chromeTheme is the resolved view of a selection as the chrome templates
// consume it.
type chromeTheme struct {
	cssVars       string
	stylesheetURL string
	scriptURL     string
}

func resolveTheme(sel *theme.Selection) chromeTheme {
	resolved := chromeTheme{}
	if sel == nil || sel.Manifest == nil {
		return resolved
	}
	m := sel.Manifest

	tokens := make(map[string]string, len(m.Tokens))
	for k, v := range m.Tokens {
		tokens[k] = v
	}
	assets := m.Assets
	if variant, ok := m.Variants[sel.Variant]; ok {
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
		if variant.Assets.Prefix != "" {
			assets.Prefix = variant.Assets.Prefix
		}
		for k, v := range variant.Assets.Files {
			if assets.Files == nil {
				assets.Files = map[string]string{}
			}
			assets.Files[k] = v
		}
	}

	resolved.cssVars = cssVars(tokens)
	resolved.stylesheetURL = assetURL(assets, "stylesheet", m.Version)
	resolved.scriptURL = assetURL(assets, "validation", m.Version)
	return resolved
}

// cssVars flattens theme tokens into a custom-property block, sorted for
// stable output.
func cssVars(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "--%s: %s; ", name, tokens[name])
	}
	return strings.TrimSpace(b.String())
}

func assetURL(assets theme.Assets, key, version string) string {
	file, ok := assets.Files[key]
	if !ok {
		return ""
	}
	url := strings.TrimSuffix(assets.Prefix, "/") + "/" + file
	if version != "" {
		url += "?v=" + version
	}
	return url
}
