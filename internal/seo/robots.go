package seo

import (
	"fmt"
	"strings"
)

var disallowedPaths = []string{"/api/", "/partials/", "/private/"}

// DefaultRobots allows crawling of every page except API and fragment routes
func DefaultRobots(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, path := range disallowedPaths {
		fmt.Fprintf(&b, "Disallow: %s\n", path)
	}
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", strings.TrimRight(siteURL, "/"))
	return b.String()
}
