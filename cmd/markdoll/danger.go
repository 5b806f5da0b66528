//go:build danger

package main

import (
	"markdoll/stdtags"
	"markdoll/tag"
)

// registerDangerTags adds the danger.eval tag when --danger was given.
// This whole function only exists in a "danger" build; a non-danger
// build links stdtags without stdtags.RegisterDanger at all, per
// SPEC_FULL's AMBIENT STACK.
func registerDangerTags(reg *tag.Registry, enabled bool) error {
	if !enabled {
		return nil
	}
	return stdtags.RegisterDanger(reg)
}
