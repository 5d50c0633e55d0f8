// Package rooms holds the stock room photographs offered per room category.
package rooms

// DefaultCategory is the fallback template set for products whose room
// category has no dedicated templates.
const DefaultCategory = "General"

var templates = map[string][]string{
	"Living Room": {
		"https://images.unsplash.com/photo-1583847268964-b28dc8f51f92?q=80&w=1200",
		"https://images.unsplash.com/photo-1618221195710-dd6b41faaea6?q=80&w=1200",
		"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?q=80&w=1200",
		"https://images.unsplash.com/photo-1554995207-c18c203602cb?q=80&w=1200",
	},
	"Bedroom": {
		"https://images.unsplash.com/photo-1616594111721-396b16601f08?q=80&w=1200",
		"https://images.unsplash.com/photo-1540518614846-7eba43376461?q=80&w=1200",
		"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?q=80&w=1200",
		"https://images.unsplash.com/photo-1505691938895-1758d7eaa511?q=80&w=1200",
	},
	"Dining Room": {
		"https://images.unsplash.com/photo-1617806118233-18e1db208fa0?q=80&w=1200",
		"https://images.unsplash.com/photo-1520699049698-cdf2f7105bc5?q=80&w=1200",
		"https://images.unsplash.com/photo-1556912177-f547c12dd0ee?q=80&w=1200",
		"https://images.unsplash.com/photo-1604014237800-1c9102c219da?q=80&w=1200",
	},
	DefaultCategory: {
		"https://images.unsplash.com/photo-1493809842364-78817add7ffb?q=80&w=1200",
		"https://images.unsplash.com/photo-1484154218962-a197022b5858?q=80&w=1200",
		"https://images.unsplash.com/photo-1615529328331-f8917597711f?q=80&w=1200",
		"https://images.unsplash.com/photo-1513519247388-193ad513d746?q=80&w=1200",
	},
}

// TemplatesFor returns the candidate room photos for a room category,
// falling back to the general set for unrecognized categories.
func TemplatesFor(room string) []string {
	if urls, ok := templates[room]; ok {
		return urls
	}
	return templates[DefaultCategory]
}

// Categories lists the room categories that have a dedicated template set.
func Categories() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}
