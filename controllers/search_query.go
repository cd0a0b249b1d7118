package controllers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tripnest/bookingbackend/dto"
	"github.com/tripnest/bookingbackend/utils"
)

const searchPageSize = 5

// parseSearchParams turns the loose query string into the typed
// optional-field struct before anything downstream sees it.
func parseSearchParams(c *gin.Context) dto.SearchParams {
	params := dto.SearchParams{
		SortOption: c.Query("sortOption"),
		Page:       utils.ParseIntDefault(c.Query("page"), 1),
		Facilities: c.QueryArray("facilities"),
		Types:      c.QueryArray("types"),
	}
	if params.Page < 1 {
		params.Page = 1
	}

	if dest := strings.TrimSpace(c.Query("destination")); dest != "" {
		params.Destination = &dest
	}
	if n, err := strconv.Atoi(c.Query("adultCount")); err == nil {
		params.AdultCount = &n
	}
	if n, err := strconv.Atoi(c.Query("childCount")); err == nil {
		params.ChildCount = &n
	}
	if n, err := strconv.Atoi(c.Query("maxPrice")); err == nil {
		params.MaxPrice = &n
	}
	for _, star := range c.QueryArray("stars") {
		if n, err := strconv.Atoi(star); err == nil {
			params.Stars = append(params.Stars, n)
		}
	}

	return params
}

// buildSearchFilter assembles the filter incrementally; absent
// parameters add no constraint, so empty params match everything.
func buildSearchFilter(params dto.SearchParams) bson.M {
	filter := bson.M{}

	if params.Destination != nil {
		// Case-insensitive substring match on city or country. The
		// user text is quoted so it matches literally.
		pattern := regexp.QuoteMeta(*params.Destination)
		filter["$or"] = bson.A{
			bson.M{"city": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"country": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	if params.AdultCount != nil {
		filter["adultCount"] = bson.M{"$gte": *params.AdultCount}
	}
	if params.ChildCount != nil {
		filter["childCount"] = bson.M{"$gte": *params.ChildCount}
	}
	if len(params.Facilities) > 0 {
		filter["facilities"] = bson.M{"$all": params.Facilities}
	}
	if len(params.Types) > 0 {
		filter["type"] = bson.M{"$in": params.Types}
	}
	if len(params.Stars) > 0 {
		filter["starRating"] = bson.M{"$in": params.Stars}
	}
	if params.MaxPrice != nil {
		filter["pricePerNight"] = bson.M{"$lte": *params.MaxPrice}
	}

	return filter
}

// buildSearchSort returns nil for an unspecified sort mode: no sort
// stage is sent and the store's default order applies.
func buildSearchSort(sortOption string) bson.D {
	switch sortOption {
	case "starRating":
		return bson.D{{Key: "starRating", Value: -1}}
	case "pricePerNightAsc":
		return bson.D{{Key: "pricePerNight", Value: 1}}
	case "pricePerNightDesc":
		return bson.D{{Key: "pricePerNight", Value: -1}}
	default:
		return nil
	}
}

// totalPages is ceil(total / searchPageSize).
func totalPages(total int64) int64 {
	return (total + searchPageSize - 1) / searchPageSize
}
