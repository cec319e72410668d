package showroom

import "embed"

// EmbeddedAssets contains static assets shipped with the server:
// showroom.js, the live-session client.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
