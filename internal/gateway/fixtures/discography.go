package fixtures

import "github.com/eliteclan/backoffice/internal/content"

// Discography retorna el catálogo embebido de lanzamientos.
func Discography() []content.DiscographyItem {
	return []content.DiscographyItem{
		{
			Base:         base("hyperreal-album", "Hyperreal Atlas"),
			Kind:         "Album",
			Year:         2023,
			Cover:        "https://images.unsplash.com/photo-1526948531399-320e7e40f0ca?auto=format&fit=crop&w=800&q=80",
			SpotifyEmbed: "https://open.spotify.com/embed/album/1Xyo4u8uXC1ZmMpatF05PJ?utm_source=generator&theme=0",
			Description:  "Un viaje narrativo por texturas electrónicas, percusiones híbridas y voces procesadas inspiradas en paisajes futuristas.",
		},
		{
			Base:         base("single-aurora", "Aurora Bloom"),
			Kind:         "Single",
			Year:         2024,
			Cover:        "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=800&q=80",
			SpotifyEmbed: "https://open.spotify.com/embed/track/0VjIjW4GlUZAMYd2vXMi3b?utm_source=generator&theme=0",
			Description:  "Melodías etéreas con sintetizadores modulados y ritmos inspirados en las auroras árticas.",
		},
		{
			Base:         base("single-neon", "Neon Pulse"),
			Kind:         "Single",
			Year:         2022,
			Cover:        "https://images.unsplash.com/photo-1511379938547-c1f69419868d?auto=format&fit=crop&w=800&q=80",
			SpotifyEmbed: "https://open.spotify.com/embed/track/7ouMYWpwJ422jRcDASZB7P?utm_source=generator&theme=0",
			Description:  "Groove club contundente con bajos 3D y percusiones futuristas diseñadas para sistemas inmersivos.",
		},
	}
}
