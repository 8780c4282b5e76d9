package fixtures

import "github.com/eliteclan/backoffice/internal/content"

// Services retorna el catálogo embebido de servicios del colectivo.
func Services() []content.Service {
	return []content.Service{
		{
			Base:        base("tour-production", "Tour Production & Stage Management"),
			Description: "Coordinación integral de giras nacionales e internacionales con equipos técnicos especializados y logística de primer nivel.",
			Features: []string{
				"Diseño técnico de escenario y rider",
				"Gestión de staff, backline y transporte",
				"Operación en vivo y control de riesgos",
			},
			CTALabel: "Solicitar agenda",
			CTAHref:  "/contact",
		},
		{
			Base:        base("creative-direction", "Creative Direction & Visual Storytelling"),
			Description: "Construimos narrativas visuales inmersivas que conectan con audiencias globales combinando arte, motion y tecnología.",
			Features: []string{
				"Dirección artística y moodboards",
				"Producción de contenido multimedia",
				"Activaciones interactivas y mapping",
			},
			CTALabel: "Revisar press kit",
			CTAHref:  "/about",
		},
		{
			Base:        base("brand-partnerships", "Brand Partnerships & Experiences"),
			Description: "Activaciones co-creadas con marcas que amplifican el proyecto musical e impulsan comunidades hiperconectadas.",
			Features: []string{
				"Diseño de experiencias phygital",
				"Gestión comercial y contratos",
				"Métricas de impacto y reporting",
			},
			CTALabel: "Hablemos",
			CTAHref:  "/contact",
		},
	}
}
