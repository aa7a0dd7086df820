package pages

import (
	"embed"
	"io/fs"
	"strings"
	"sync"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

//go:embed frontend-version.txt
var frontendVersionRaw string

const (
	StylesheetName       = "prototype.css"
	ValidationScriptName = "field-validation.js"
)

// TemplatesFS exposes the embedded page chrome templates so callers can
// override individual files by layering their own fs.FS on top.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the embedded stylesheet and browser validation runtime so
// callers can serve them over HTTP or copy them into a downloadable
// prototype.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

var frontendVersion = sync.OnceValue(func() string {
	return strings.TrimSpace(frontendVersionRaw)
})

// FrontendVersion returns the version tag baked into asset URLs. It is read
// once per process from the embedded bundle; a new version means a new
// binary.
func FrontendVersion() string {
	return frontendVersion()
}
