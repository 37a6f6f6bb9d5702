package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SearchTables holds the query-string tables driving the external-source
// fan-out. Keeping them as loadable data instead of compiled-in logic lets a
// deployment cover another city without a code change.
type SearchTables struct {
	// CategoryQueries maps a category display name to the curated free-text
	// queries issued for it.
	CategoryQueries map[string][]string `mapstructure:"category_queries"`
	// NearbyQueries are generic "near me" queries used when a category search
	// comes back empty.
	NearbyQueries []string `mapstructure:"nearby_queries"`
	// PopularPlaces are well-known local place names queried one by one as a
	// fallback for sparse areas.
	PopularPlaces []string `mapstructure:"popular_places"`
	// NearbyTypes are provider place types tried as the last fallback.
	NearbyTypes []string `mapstructure:"nearby_types"`
}

// LoadSearchTables reads the search tables from the YAML file at path. An
// empty path yields the built-in defaults, which cover Quito.
func LoadSearchTables(path string) (*SearchTables, error) {
	tables := DefaultSearchTables()
	if path == "" {
		return tables, nil
	}

	vpr := viper.New()
	vpr.SetConfigFile(path)
	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read search tables file: %w", err)
	}

	if err := vpr.Unmarshal(tables); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search tables: %w", err)
	}

	return tables, nil
}

// DefaultSearchTables returns the built-in query tables for Quito, Ecuador.
func DefaultSearchTables() *SearchTables {
	return &SearchTables{
		CategoryQueries: map[string][]string{
			"Restaurantes": {
				"restaurantes cerca de mi Quito",
				"pizza Quito",
				"comida Quito",
				"SportPizza Quito",
				"Don Feliciano Quito",
				"KFC Quito",
				"McDonald's Quito",
				"Burger King Quito",
			},
			"Cafeterías": {
				"café Quito",
				"cafetería Quito",
				"Juan Valdez Quito",
				"Sweet & Coffee Quito",
				"Starbucks Quito",
			},
			"Turismo": {
				"turismo Quito",
				"lugares turísticos Quito",
				"Centro Histórico Quito",
				"Plaza Grande Quito",
				"Basílica del Voto Nacional",
				"Panecillo Quito",
			},
			"Hoteles": {
				"hoteles Quito",
				"hospedaje Quito",
				"alojamiento Quito",
				"Hilton Quito",
				"JW Marriott Quito",
			},
			"Cultura": {
				"museos Quito",
				"cultura Quito",
				"centro histórico Quito",
				"Casa de la Cultura Quito",
				"Museo de la Ciudad",
			},
			"Parques": {
				"parques Quito",
				"espacios verdes Quito",
				"Parque El Ejido",
				"Parque La Carolina",
				"Parque Metropolitano",
			},
			"Compras": {
				"centros comerciales Quito",
				"shopping Quito",
				"Mall El Jardín",
				"CCI Quito",
				"Quicentro Shopping",
			},
			"Deportes": {
				"gimnasios Quito",
				"canchas Quito",
				"deporte Quito",
				"Smart Fit Quito",
				"canchas de fútbol Quito",
				"canchas sintéticas Quito",
			},
			"Vida Nocturna": {
				"bares Quito",
				"discotecas Quito",
				"vida nocturna Quito",
				"Mariscal Quito",
				"zona rosa Quito",
			},
			"Entretenimiento": {
				"cine Quito",
				"entretenimiento Quito",
				"Cinemark Quito",
				"Multicines Quito",
				"bowling Quito",
			},
		},
		NearbyQueries: []string{
			"pizza cerca de mi",
			"restaurantes cerca de mi",
			"café cerca de mi",
			"canchas cerca de mi",
			"gimnasio cerca de mi",
			"farmacia cerca de mi",
			"supermercado cerca de mi",
			"gasolinera cerca de mi",
		},
		PopularPlaces: []string{
			"SportPizza Quito",
			"Don Feliciano Quito",
			"Tokyo Internacional Quito",
			"El Corral Quito",
			"Papas & Beer Quito",
			"KFC Quito norte",
			"McDonald's Quito",
			"Domino's Pizza Quito",
			"Pizza Hut Quito",
			"Burger King Quito",
			"Juan Valdez Café Quito",
			"Sweet & Coffee Quito",
			"Starbucks Quito",
			"Mall El Jardín Quito",
			"CCI Quito",
			"Quicentro Shopping",
			"Smart Fit Quito",
			"Multicines Quito",
			"Cinemark Quito",
			"Plaza Grande Quito",
			"Basílica del Voto Nacional",
			"Teleférico Quito",
			"Parque La Carolina",
			"Centro Histórico Quito",
			"Mitad del Mundo",
			"canchas sintéticas Quito norte",
			"canchas de fútbol Quito",
			"farmacias Fybeca Quito",
			"SuperMaxi Quito",
			"Mega Santa María Quito",
		},
		NearbyTypes: []string{
			"restaurant",
			"cafe",
			"tourist_attraction",
			"lodging",
			"museum",
			"park",
			"shopping_mall",
			"gym",
			"bar",
			"movie_theater",
			"gas_station",
			"pharmacy",
			"supermarket",
			"bank",
		},
	}
}

// QueriesForCategory returns the curated queries for the given category name,
// falling back to a single "<category> <locality>" query for categories the
// table does not know.
func (st *SearchTables) QueriesForCategory(category, locality string) []string {
	if queries, ok := st.CategoryQueries[category]; ok {
		return queries
	}

	return []string{category + " " + locality}
}
