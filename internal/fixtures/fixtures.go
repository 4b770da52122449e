// Package fixtures embeds small Triangle source programs that this package's
// tests run through scanner, parser, and checker — the end-to-end scenarios are
// easier to keep in sync with real, readable source text than with
// hand-built ASTs.
package fixtures

import "embed"

//go:embed *.t
var files embed.FS

// Load returns the contents of the named fixture (e.g. "hello.t").
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
