package service

import "github.com/spotlyvf/scout/internal/models"

// categoryRule binds one provider category tag to the category shown in the
// feed. The rules form a single ordered table so the priority-match semantics
// stay testable in isolation.
type categoryRule struct {
	tag   string
	name  string
	icon  string
	color string
}

var categoryRules = []categoryRule{
	// Comida y bebida
	{"restaurant", "Restaurantes", "restaurant-outline", "#E74C3C"},
	{"food", "Restaurantes", "restaurant-outline", "#E74C3C"},
	{"meal_takeaway", "Restaurantes", "restaurant-outline", "#E74C3C"},
	{"meal_delivery", "Restaurantes", "restaurant-outline", "#E74C3C"},
	{"cafe", "Cafeterías", "cafe-outline", "#8D6E63"},
	{"bakery", "Cafeterías", "cafe-outline", "#8D6E63"},
	{"bar", "Vida Nocturna", "wine-outline", "#F39C12"},
	{"night_club", "Vida Nocturna", "musical-notes-outline", "#F39C12"},

	// Hospedaje
	{"lodging", "Hoteles", "bed-outline", "#3498DB"},

	// Turismo y entretenimiento
	{"tourist_attraction", "Turismo", "camera-outline", "#2ECC71"},
	{"amusement_park", "Entretenimiento", "game-controller-outline", "#9B59B6"},
	{"zoo", "Entretenimiento", "paw-outline", "#9B59B6"},
	{"aquarium", "Entretenimiento", "fish-outline", "#16A085"},
	{"movie_theater", "Cine", "videocam-outline", "#34495E"},
	{"bowling_alley", "Entretenimiento", "game-controller-outline", "#9B59B6"},

	// Compras
	{"shopping_mall", "Compras", "storefront-outline", "#8E44AD"},
	{"store", "Compras", "storefront-outline", "#8E44AD"},
	{"supermarket", "Compras", "basket-outline", "#8E44AD"},

	// Cultura
	{"museum", "Cultura", "library-outline", "#1ABC9C"},
	{"art_gallery", "Cultura", "color-palette-outline", "#1ABC9C"},
	{"library", "Bibliotecas", "book-outline", "#1ABC9C"},

	// Deportes y fitness
	{"gym", "Deportes", "barbell-outline", "#E67E22"},
	{"stadium", "Deportes", "football-outline", "#E67E22"},
	{"spa", "Bienestar", "flower-outline", "#16A085"},

	// Naturaleza
	{"park", "Parques", "leaf-outline", "#27AE60"},

	// Servicios
	{"hospital", "Salud", "medical-outline", "#C0392B"},
	{"bank", "Servicios", "card-outline", "#34495E"},
	{"atm", "Servicios", "cash-outline", "#34495E"},
	{"gas_station", "Servicios", "car-outline", "#F39C12"},
	{"pharmacy", "Salud", "medical-outline", "#C0392B"},

	// Transporte
	{"subway_station", "Transporte", "train-outline", "#7F8C8D"},
	{"bus_station", "Transporte", "bus-outline", "#7F8C8D"},
	{"airport", "Transporte", "airplane-outline", "#7F8C8D"},
}

// priorityTags are matched first, in order, so a place tagged both
// "restaurant" and "store" lands in Restaurantes.
var priorityTags = []string{
	"restaurant", "cafe", "tourist_attraction", "lodging", "museum",
	"park", "shopping_mall", "gym", "bar", "night_club", "movie_theater",
}

var defaultCategory = models.PlaceCategory{Name: "Otros", Icon: "location-outline", Color: "#95A5A6"}

var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]models.PlaceCategory {
	index := make(map[string]models.PlaceCategory, len(categoryRules))
	for _, rule := range categoryRules {
		index[rule.tag] = models.PlaceCategory{Name: rule.name, Icon: rule.icon, Color: rule.color}
	}

	return index
}

// mapTypesToCategory resolves the provider category tags to a feed category:
// first priority tag wins, else the first tag with any rule, else "Otros".
func mapTypesToCategory(types []string) models.PlaceCategory {
	tagged := make(map[string]bool, len(types))
	for _, tag := range types {
		tagged[tag] = true
	}

	for _, tag := range priorityTags {
		if tagged[tag] {
			if category, ok := categoryIndex[tag]; ok {
				return category
			}
		}
	}

	for _, tag := range types {
		if category, ok := categoryIndex[tag]; ok {
			return category
		}
	}

	return defaultCategory
}

// priceRangeForLevel converts the provider's 0..4 price ordinal to the price
// range shown in the feed. An unknown level maps to "$".
func priceRangeForLevel(level *int) string {
	if level == nil {
		return "$"
	}

	switch *level {
	case 0:
		return "Gratis"
	case 1:
		return "$"
	case 2:
		return "$$"
	case 3:
		return "$$$"
	case 4:
		return "$$$$"
	default:
		return "$"
	}
}
