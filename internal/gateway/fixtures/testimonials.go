package fixtures

import "github.com/eliteclan/backoffice/internal/content"

// Testimonials retorna los testimonios embebidos. El título del ítem es
// el nombre de la persona que recomienda.
func Testimonials() []content.Testimonial {
	return []content.Testimonial{
		{
			Base:    base("sonarx", "Valentina Suárez"),
			Quote:   "EliteClan transforma cada show en un universo inmersivo. Su control técnico y sentido artístico superó los estándares de nuestro festival.",
			Name:    "Valentina Suárez",
			Role:    "Directora de Producción",
			Company: "SonarX Festival",
			Avatar:  "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?auto=format&fit=crop&w=400&q=80",
		},
		{
			Base:    base("ableton-latam", "Ernesto Martínez"),
			Quote:   "El equipo diseñó workshops interactivos impecables que conectaron a creadores emergentes con nuestra tecnología de manera orgánica.",
			Name:    "Ernesto Martínez",
			Role:    "Head of Education LATAM",
			Company: "Ableton",
			Avatar:  "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&w=400&q=80",
		},
	}
}
