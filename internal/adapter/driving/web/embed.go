package web

import "embed"

// templatesFS holds the embedded page templates.
//
//go:embed templates/*.html templates/errors/*.html
var templatesFS embed.FS

// staticFS holds the embedded static assets.
//
//go:embed static/*
var staticFS embed.FS
