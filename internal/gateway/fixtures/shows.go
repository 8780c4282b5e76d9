package fixtures

import "github.com/eliteclan/backoffice/internal/content"

// Shows retorna las fechas del dataset embebido. Los media estáticos se
// mapean a MediaAsset: los videos como embeds de YouTube, el resto como
// imágenes con proveedor desconocido.
func Shows() []content.Show {
	return []content.Show{
		{
			Base:        base("quantum-lights", "Quantum Lights World Tour", "Gira", "Inmersivo"),
			Slug:        "quantum-lights-world-tour",
			Date:        at("2024-11-16T20:00:00Z"),
			Venue:       "Luna Park Arena",
			City:        "Buenos Aires",
			Country:     "Argentina",
			Genre:       "Electronic",
			Description: "Un espectáculo inmersivo con pantallas holográficas y visuales sincronizadas con beats futuristas.",
			HeroImage:   "https://images.unsplash.com/photo-1489515217757-5fd1be406fef?auto=format&fit=crop&w=1200&q=80",
			Media: []content.MediaAsset{
				showMedia("quantum-lights", content.MediaEmbed, content.ProviderYouTube,
					"https://www.youtube.com/embed/0p_eQGKFY3Q?autoplay=0&mute=1", "Aftermovie Quantum Lights"),
				showMedia("quantum-lights", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&w=1200&q=80", "Visuales LED sincronizadas con el público"),
				showMedia("quantum-lights", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1529158062015-cad636e69505?auto=format&fit=crop&w=1200&q=80", "Show con luces verdes"),
			},
		},
		{
			Base:        base("neon-sands", "Neon Sands Festival", "Festival", "Outdoor"),
			Slug:        "neon-sands-festival",
			Date:        at("2024-12-09T22:00:00Z"),
			Venue:       "Dunes Open Air",
			City:        "Iquique",
			Country:     "Chile",
			Genre:       "Bass / Trap",
			Description: "Performance nocturna en el desierto con instalaciones lumínicas responsivas al movimiento del público.",
			HeroImage:   "https://images.unsplash.com/photo-1464375117522-1311d6a5b81f?auto=format&fit=crop&w=1200&q=80",
			Media: []content.MediaAsset{
				showMedia("neon-sands", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1514525253161-7a46d19cd819?auto=format&fit=crop&w=1200&q=80", "Festival Neon Sands en el desierto"),
				showMedia("neon-sands", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1470225620780-dba8ba36b745?auto=format&fit=crop&w=1200&q=80", "Visuales púrpura en escenario principal"),
				showMedia("neon-sands", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1506157786151-b8491531f063?auto=format&fit=crop&w=1200&q=80", "Público vibrando con la música"),
			},
		},
		{
			Base:        base("skyline-sessions", "Skyline Sessions Rooftop", "Streaming", "Experiencia"),
			Slug:        "skyline-sessions",
			Date:        at("2025-01-14T19:30:00Z"),
			Venue:       "Mirador Andino",
			City:        "Bogotá",
			Country:     "Colombia",
			Genre:       "House",
			Description: "Set sunset con transmisión en streaming 4K y audio espacial binaural.",
			HeroImage:   "https://images.unsplash.com/photo-1526481280695-3c46917bd318?auto=format&fit=crop&w=1200&q=80",
			Media: []content.MediaAsset{
				showMedia("skyline-sessions", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1200&q=80", "DJ set al atardecer en rooftop"),
				showMedia("skyline-sessions", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1461783436728-0a9217714694?auto=format&fit=crop&w=1200&q=80", "Ciudad iluminada al fondo"),
			},
		},
		{
			Base:        base("aqua-sonar", "Aqua Sonar Immersive", "Inmersivo", "Tecnología"),
			Slug:        "aqua-sonar-experience",
			Date:        at("2025-02-22T21:00:00Z"),
			Venue:       "Centro de Convenciones Pacifico",
			City:        "Lima",
			Country:     "Perú",
			Genre:       "Ambient / IDM",
			Description: "Instalación sonora 360° con mapping acuático, sensores biométricos y visuales orgánicos.",
			HeroImage:   "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?auto=format&fit=crop&w=1200&q=80",
			Media: []content.MediaAsset{
				showMedia("aqua-sonar", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1497032628192-86f99bcd76bc?auto=format&fit=crop&w=1200&q=80", "Instalación con visuales azules"),
				showMedia("aqua-sonar", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1519677100203-a0e668c92439?auto=format&fit=crop&w=1200&q=80", "Público rodeado de luces aqua"),
			},
		},
		{
			Base:        base("pulse-lab", "Pulse Lab x Ableton", "Educativo", "Workshop"),
			Slug:        "pulse-lab-workshop",
			Date:        at("2024-10-02T16:00:00Z"),
			Venue:       "Ableton Studio MX",
			City:        "Ciudad de México",
			Country:     "México",
			Genre:       "Workshop",
			Description: "Laboratorio creativo para productores con sesiones 1:1 y live set colaborativo.",
			HeroImage:   "https://images.unsplash.com/photo-1511379938547-c1f69419868d?auto=format&fit=crop&w=1200&q=80",
			Media: []content.MediaAsset{
				showMedia("pulse-lab", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1459749411175-04bf5292ceea?auto=format&fit=crop&w=1200&q=80", "Productores en laboratorio musical"),
				showMedia("pulse-lab", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?auto=format&fit=crop&w=1200&q=80", "Equipo de audio profesional"),
			},
		},
		{
			Base:        base("aurora-nights", "Aurora Nights Residency", "Residencia", "Experimental"),
			Slug:        "aurora-nights",
			Date:        at("2025-03-30T23:00:00Z"),
			Venue:       "Svalbard Sound Lab",
			City:        "Longyearbyen",
			Country:     "Noruega",
			Genre:       "Experimental",
			Description: "Residencia artística audiovisual inspirada en auroras boreales y sonidos árticos procesados.",
			HeroImage:   "https://images.unsplash.com/photo-1469474968028-56623f02e42e?auto=format&fit=crop&w=1200&q=80",
			Media: []content.MediaAsset{
				showMedia("aurora-nights", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1429962714451-bb934ecdc4ec?auto=format&fit=crop&w=1200&q=80", "Paisaje de auroras boreales"),
				showMedia("aurora-nights", content.MediaImage, content.ProviderUnknown,
					"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1200&q=80", "Setup de sintetizadores"),
			},
		},
	}
}

func showMedia(showID string, kind content.MediaKind, provider content.MediaProvider, url, alt string) content.MediaAsset {
	return content.MediaAsset{
		ID:       showID + "-" + url,
		Kind:     kind,
		URL:      url,
		Alt:      alt,
		Provider: provider,
	}
}
