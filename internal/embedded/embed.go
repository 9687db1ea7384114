package embedded

import (
	"embed"
)

// FS embeds the ULS record-layout catalogs at build time, one YAML document
// per record kind plus the merged output layout.
//
//go:embed schemas/*.yaml
var FS embed.FS
