package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tripnest/bookingbackend/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestBuildSearchFilter(t *testing.T) {
	tests := []struct {
		name   string
		params dto.SearchParams
		want   bson.M
	}{
		{
			name:   "no params means no constraints",
			params: dto.SearchParams{},
			want:   bson.M{},
		},
		{
			name:   "destination matches city or country case-insensitively",
			params: dto.SearchParams{Destination: strPtr("London")},
			want: bson.M{"$or": bson.A{
				bson.M{"city": bson.M{"$regex": "London", "$options": "i"}},
				bson.M{"country": bson.M{"$regex": "London", "$options": "i"}},
			}},
		},
		{
			name:   "destination with regex metacharacters is quoted",
			params: dto.SearchParams{Destination: strPtr("St. Ives")},
			want: bson.M{"$or": bson.A{
				bson.M{"city": bson.M{"$regex": `St\. Ives`, "$options": "i"}},
				bson.M{"country": bson.M{"$regex": `St\. Ives`, "$options": "i"}},
			}},
		},
		{
			name:   "occupancy counts are lower bounds",
			params: dto.SearchParams{AdultCount: intPtr(2), ChildCount: intPtr(1)},
			want: bson.M{
				"adultCount": bson.M{"$gte": 2},
				"childCount": bson.M{"$gte": 1},
			},
		},
		{
			name:   "facilities require all listed",
			params: dto.SearchParams{Facilities: []string{"wifi", "parking"}},
			want:   bson.M{"facilities": bson.M{"$all": []string{"wifi", "parking"}}},
		},
		{
			name:   "types and stars are set membership",
			params: dto.SearchParams{Types: []string{"Budget", "Luxury"}, Stars: []int{4, 5}},
			want: bson.M{
				"type":       bson.M{"$in": []string{"Budget", "Luxury"}},
				"starRating": bson.M{"$in": []int{4, 5}},
			},
		},
		{
			name:   "max price is an upper bound",
			params: dto.SearchParams{MaxPrice: intPtr(200)},
			want:   bson.M{"pricePerNight": bson.M{"$lte": 200}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSearchFilter(tt.params))
		})
	}
}

func TestBuildSearchSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "starRating", Value: -1}}, buildSearchSort("starRating"))
	assert.Equal(t, bson.D{{Key: "pricePerNight", Value: 1}}, buildSearchSort("pricePerNightAsc"))
	assert.Equal(t, bson.D{{Key: "pricePerNight", Value: -1}}, buildSearchSort("pricePerNightDesc"))
	assert.Nil(t, buildSearchSort(""))
	assert.Nil(t, buildSearchSort("bogus"))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0))
	assert.Equal(t, int64(1), totalPages(1))
	assert.Equal(t, int64(1), totalPages(5))
	assert.Equal(t, int64(2), totalPages(6))
	assert.Equal(t, int64(3), totalPages(11))
}

func TestParseSearchParams(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET",
		"/api/hotels/search?destination=Paris&adultCount=2&childCount=1&facilities=wifi&facilities=spa&types=Luxury&stars=4&stars=bad&stars=5&maxPrice=300&sortOption=pricePerNightAsc&page=3",
		nil)

	params := parseSearchParams(c)

	require.NotNil(t, params.Destination)
	assert.Equal(t, "Paris", *params.Destination)
	require.NotNil(t, params.AdultCount)
	assert.Equal(t, 2, *params.AdultCount)
	require.NotNil(t, params.ChildCount)
	assert.Equal(t, 1, *params.ChildCount)
	assert.Equal(t, []string{"wifi", "spa"}, params.Facilities)
	assert.Equal(t, []string{"Luxury"}, params.Types)
	assert.Equal(t, []int{4, 5}, params.Stars)
	require.NotNil(t, params.MaxPrice)
	assert.Equal(t, 300, *params.MaxPrice)
	assert.Equal(t, "pricePerNightAsc", params.SortOption)
	assert.Equal(t, 3, params.Page)
}

func TestParseSearchParams_Empty(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/hotels/search", nil)

	params := parseSearchParams(c)

	assert.Nil(t, params.Destination)
	assert.Nil(t, params.AdultCount)
	assert.Nil(t, params.ChildCount)
	assert.Nil(t, params.MaxPrice)
	assert.Empty(t, params.Facilities)
	assert.Empty(t, params.Types)
	assert.Empty(t, params.Stars)
	assert.Equal(t, 1, params.Page)
	assert.Empty(t, buildSearchFilter(params))
}
