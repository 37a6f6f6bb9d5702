package service

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/spotlyvf/scout/internal/geo"
	"github.com/spotlyvf/scout/internal/models"
)

// genericTypes are category tags too coarse to ever be a useful feed entry:
// whole cities, postal codes, streets. A candidate carrying any of them is
// rejected regardless of distance.
var genericTypes = map[string]bool{
	"political":                   true,
	"postal_code":                 true,
	"administrative_area_level_1": true,
	"administrative_area_level_2": true,
	"route":                       true,
}

// equidistantBandKm is the distance band inside which two candidates are
// treated as equally far and ordered by rating instead, so a marginally
// farther but much better-rated place is not buried.
const equidistantBandKm = 1.0

// minNameLength rejects candidates whose display name is too short to be a
// real place name.
const minNameLength = 3

// filterRelevant applies the relevance gate to raw external candidates: a
// usable name, a location inside the serviceable bounding box, no
// too-generic category tag, and a real-world distance from the origin of at
// most maxDistanceKm (boundary inclusive). The surviving records are then
// deduplicated by place ID, first occurrence wins.
func (s *DiscoveryService) filterRelevant(
	records []models.ExternalPlace,
	origin models.Coordinates,
	maxDistanceKm float64,
) []models.ExternalPlace {
	relevant := make([]models.ExternalPlace, 0, len(records))
	for _, record := range records {
		if utf8.RuneCountInString(record.Name) <= minNameLength {
			continue
		}
		if !s.inBounds(record.Location) {
			continue
		}
		if hasGenericType(record.Types) {
			continue
		}
		if geo.DistanceKm(origin, record.Location) > maxDistanceKm {
			continue
		}
		relevant = append(relevant, record)
	}

	return dedupByPlaceID(relevant)
}

// inBounds reports whether the location falls inside the configured region
// bounding box.
func (s *DiscoveryService) inBounds(location models.Coordinates) bool {
	bounds := s.cfg.Bounds

	return location.Latitude >= bounds.South && location.Latitude <= bounds.North &&
		location.Longitude >= bounds.West && location.Longitude <= bounds.East
}

func hasGenericType(types []string) bool {
	for _, tag := range types {
		if genericTypes[tag] {
			return true
		}
	}

	return false
}

// dedupByPlaceID removes records with a repeated place ID, keeping the first
// occurrence encountered. Order is preserved.
func dedupByPlaceID(records []models.ExternalPlace) []models.ExternalPlace {
	seen := make(map[string]bool, len(records))
	unique := make([]models.ExternalPlace, 0, len(records))
	for _, record := range records {
		if seen[record.PlaceID] {
			continue
		}
		seen[record.PlaceID] = true
		unique = append(unique, record)
	}

	return unique
}

// rankCandidates orders candidates by ascending distance from the origin,
// falling back to descending rating for candidates within the equidistance
// band, and caps the result to the configured limit.
func (s *DiscoveryService) rankCandidates(
	records []models.ExternalPlace,
	origin models.Coordinates,
) []models.ExternalPlace {
	distances := make([]float64, len(records))
	for i, record := range records {
		distances[i] = geo.DistanceKm(origin, record.Location)
	}

	indexes := make([]int, len(records))
	for i := range indexes {
		indexes[i] = i
	}

	sort.SliceStable(indexes, func(a, b int) bool {
		di, dj := distances[indexes[a]], distances[indexes[b]]
		if math.Abs(di-dj) < equidistantBandKm {
			return records[indexes[a]].Rating > records[indexes[b]].Rating
		}

		return di < dj
	})

	ranked := make([]models.ExternalPlace, 0, len(records))
	for _, idx := range indexes {
		ranked = append(ranked, records[idx])
	}

	if len(ranked) > s.cfg.ResultLimit {
		ranked = ranked[:s.cfg.ResultLimit]
	}

	return ranked
}
