package cache

import "fmt"

// NewsPrefix covers every cached GET response under /news; mutations
// invalidate the whole collection at once.
const NewsPrefix = "GET-/news"

// HTTPKey builds the cache key for a GET response: method, full request
// URI and the requester identity (or "public").
func HTTPKey(method, uri, identity string) string {
	if identity == "" {
		identity = "public"
	}
	return fmt.Sprintf("%s-%s-%s", method, uri, identity)
}
