package chain

import "strings"

// ExplorerLink builds "<base>/<kind>/<id>", e.g. kind "tx" or "address".
// An empty base yields an empty link.
func ExplorerLink(base, kind, id string) string {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return ""
	}
	return base + "/" + kind + "/" + id
}
