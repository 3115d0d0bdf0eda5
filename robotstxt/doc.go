// Package robotstxt parses and writes robots.txt files without losing
// anything: comments, blank and malformed lines, and the whitespace around
// every value survive a Parse/Serialize round trip.
//
//	User-agent: *
//	Disallow: /private/ # does not block indexing
//
// parses into two directive lines. The second has key "Disallow", value
// "/private/" and comment "# does not block indexing". Changing a value and
// serializing rewrites only that value:
//
//	doc := robotstxt.Parse(content)
//	for _, line := range doc.Lookup("disallow") {
//		line.SetValue("/tmp/")
//	}
//	doc.Append("Sitemap", "https://example.com/sitemap.xml")
//	out := robotstxt.Serialize(doc)
//
// The package does not interpret directives. It has no notion of groups,
// path matching or crawl permissions.
package robotstxt
