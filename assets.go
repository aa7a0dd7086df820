package protoform

import (
	"io/fs"

	"github.com/goliatone/go-protoform/pkg/pages"
)

// AssetsFS exposes the embedded stylesheet and browser validation runtime so
// applications can serve them without a frontend build step.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(protoform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return pages.AssetsFS()
}

// TemplatesFS exposes the embedded page chrome templates.
func TemplatesFS() fs.FS {
	return pages.TemplatesFS()
}

// FrontendVersion returns the version tag baked into compiled asset URLs.
func FrontendVersion() string {
	return pages.FrontendVersion()
}
