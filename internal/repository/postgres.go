package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spotlyvf/scout/internal/models"
)

const listPlacesQuery = `
	SELECT
		p.id, p.name, p.description,
		c.id, c.name, c.icon, c.color,
		p.address, p.city, p.state, p.country,
		p.latitude, p.longitude,
		p.average_rating, p.total_reviews, p.price_range,
		COALESCE(i.image_url, '')
	FROM places p
	JOIN place_categories c ON c.id = p.category_id
	LEFT JOIN place_images i ON i.place_id = p.id AND i.is_primary = true
	WHERE p.is_active = true`

// ListPlaces retrieves the active first-party places, optionally narrowed to a
// category and/or a free-text search over name and description. Whatever is
// returned is treated by the caller as the complete candidate set.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - categoryID: Optional category filter; nil means all categories.
// - search: Optional case-insensitive substring match; empty means no filter.
//
// Returns:
// - A slice of models.FirstPartyPlace containing the places that match.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) ListPlaces(
	ctx context.Context,
	categoryID *int64,
	search string,
) ([]models.FirstPartyPlace, error) {
	query := listPlacesQuery
	args := make([]any, 0, 2)

	if categoryID != nil {
		args = append(args, *categoryID)
		query += "\n\tAND p.category_id = $" + strconv.Itoa(len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		idx := strconv.Itoa(len(args))
		query += "\n\tAND (p.name ILIKE $" + idx + " OR p.description ILIKE $" + idx + ")"
	}
	query += "\n\tORDER BY p.created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active places: %w", err)
	}
	defer rows.Close()

	var places []models.FirstPartyPlace
	for rows.Next() {
		var place models.FirstPartyPlace
		var primaryImage string
		if errScan := rows.Scan(
			&place.ID, &place.Name, &place.Description,
			&place.Category.ID, &place.Category.Name, &place.Category.Icon, &place.Category.Color,
			&place.Address, &place.City, &place.State, &place.Country,
			&place.Latitude, &place.Longitude,
			&place.AverageRating, &place.TotalReviews, &place.PriceRange,
			&primaryImage,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan active place: %w", errScan)
		}
		if primaryImage != "" {
			place.Images = append(place.Images, models.PlaceImage{
				URL:       primaryImage,
				IsPrimary: true,
				Order:     1,
			})
		}
		places = append(places, place)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Fetched first-party places", "count", len(places))

	return places, nil
}

const listCategoriesQuery = `
	SELECT id, name, icon, color
	FROM place_categories
	ORDER BY id ASC;`

// ListCategories retrieves every place category known to the backend. The
// discovery service uses it to resolve a category filter ID to its display
// name before fanning out to the external source.
func (r *Repository) ListCategories(ctx context.Context) ([]models.PlaceCategory, error) {
	rows, err := r.db.Query(ctx, listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query place categories: %w", err)
	}
	defer rows.Close()

	var categories []models.PlaceCategory
	for rows.Next() {
		var category models.PlaceCategory
		if errScan := rows.Scan(&category.ID, &category.Name, &category.Icon, &category.Color); errScan != nil {
			return nil, fmt.Errorf("failed to scan place category: %w", errScan)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return categories, nil
}
