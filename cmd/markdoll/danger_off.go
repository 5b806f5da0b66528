//go:build !danger

package main

import "markdoll/tag"

// registerDangerTags is a no-op outside a "danger" build.
func registerDangerTags(reg *tag.Registry, enabled bool) error {
	return nil
}
