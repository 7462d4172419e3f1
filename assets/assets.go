package assets

import "embed"

//go:embed all:levels
var levelFS embed.FS
