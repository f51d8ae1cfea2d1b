package web

import (
	"embed"
	"io/fs"
)

// FS contains the embedded static assets.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/*
var FS embed.FS

// Static returns the static directory as the root of a filesystem, ready to
// be served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
