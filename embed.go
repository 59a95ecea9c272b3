// embed.go declares the embedded data files. It must sit in the project root
// next to data/ because //go:embed cannot reach parent directories.
package main

import "embed"

//go:embed data/countdown.yaml
var dataFS embed.FS
