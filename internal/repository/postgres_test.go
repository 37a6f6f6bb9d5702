package repository_test

import (
	"log/slog"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/spotlyvf/scout/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPlacesBase = `
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

var placeColumns = []string{
	"id", "name", "description",
	"category_id", "category_name", "category_icon", "category_color",
	"address", "city", "state", "country",
	"latitude", "longitude",
	"average_rating", "total_reviews", "price_range",
	"image_url",
}

func sampleRow(rows *pgxmock.Rows) *pgxmock.Rows {
	return rows.AddRow(
		"79cf2b15-66c1-4b4c-8e5a-000000000001", "La Choza", "Comida tradicional",
		int64(1), "Restaurantes", "restaurant-outline", "#E74C3C",
		"Av. 12 de Octubre", "Quito", "Pichincha", "Ecuador",
		"-0.1905", "-78.4832",
		"4.5", 230, "$$",
		"https://cdn.spotlyvf.ec/places/la-choza.jpg",
	)
}

func TestListPlaces(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("error - query active places", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listPlacesBase)).
			WillReturnError(assert.AnError)

		places, err := repo.ListPlaces(ctx, nil, "")

		require.Nil(t, places)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query active places")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan active place", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listPlacesBase)).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name"}).AddRow("some-id", "some name"),
			)

		places, err := repo.ListPlaces(ctx, nil, "")

		require.Nil(t, places)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to scan active place")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listPlacesBase)).
			WillReturnRows(sampleRow(pgxmock.NewRows(placeColumns)).RowError(1, assert.AnError))

		places, err := repo.ListPlaces(ctx, nil, "")

		require.Nil(t, places)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - no filters", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(listPlacesBase)).
			WillReturnRows(sampleRow(pgxmock.NewRows(placeColumns)))

		places, err := repo.ListPlaces(ctx, nil, "")

		require.NoError(t, err)
		require.Len(t, places, 1)
		place := places[0]
		assert.Equal(t, "La Choza", place.Name)
		assert.Equal(t, "Restaurantes", place.Category.Name)
		assert.Equal(t, "-0.1905", place.Latitude)
		assert.Equal(t, "4.5", place.AverageRating)
		assert.Equal(t, 230, place.TotalReviews)
		require.Len(t, place.Images, 1)
		assert.True(t, place.Images[0].IsPrimary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - category filter", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)
		categoryID := int64(1)

		query := listPlacesBase + "\n\tAND p.category_id = $1" + "\n\tORDER BY p.created_at DESC;"
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(categoryID).
			WillReturnRows(sampleRow(pgxmock.NewRows(placeColumns)))

		places, err := repo.ListPlaces(ctx, &categoryID, "")

		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - search filter", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		query := listPlacesBase +
			"\n\tAND (p.name ILIKE $1 OR p.description ILIKE $1)" +
			"\n\tORDER BY p.created_at DESC;"
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("%choza%").
			WillReturnRows(sampleRow(pgxmock.NewRows(placeColumns)))

		places, err := repo.ListPlaces(ctx, nil, "choza")

		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - place without primary image", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		rows := pgxmock.NewRows(placeColumns).AddRow(
			"79cf2b15-66c1-4b4c-8e5a-000000000002", "Parque Itchimbía", "",
			int64(2), "Parques", "leaf-outline", "#27AE60",
			"Itchimbía", "Quito", "Pichincha", "Ecuador",
			"-0.2186", "-78.5003",
			"4.7", 45, "$",
			"",
		)
		mock.ExpectQuery(regexp.QuoteMeta(listPlacesBase)).WillReturnRows(rows)

		places, err := repo.ListPlaces(ctx, nil, "")

		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Empty(t, places[0].Images)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListCategories(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	query := `
	SELECT id, name, icon, color
	FROM place_categories
	ORDER BY id ASC;`

	t.Run("error - query place categories", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(assert.AnError)

		categories, err := repo.ListCategories(ctx)

		require.Nil(t, categories)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query place categories")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - list categories", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "name", "icon", "color"}).
					AddRow(int64(1), "Restaurantes", "restaurant-outline", "#E74C3C").
					AddRow(int64(2), "Parques", "leaf-outline", "#27AE60"),
			)

		categories, err := repo.ListCategories(ctx)

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Restaurantes", categories[0].Name)
		assert.Equal(t, int64(2), categories[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
