package constant

import (
	_ "embed"
	"strings"
)

//go:embed version
var version string

var Version = strings.TrimSpace(version)

const AppName = "spotid"
