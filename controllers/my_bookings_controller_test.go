package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tripnest/bookingbackend/config"
	"github.com/tripnest/bookingbackend/middleware"
	"github.com/tripnest/bookingbackend/models"
)

func TestUserBookings(t *testing.T) {
	hotel := models.Hotel{
		Name: "Harbour View",
		Bookings: []models.Booking{
			{ID: "b1", UserID: "user-1"},
			{ID: "b2", UserID: "user-2"},
			{ID: "b3", UserID: "user-1"},
		},
	}

	filtered := userBookings(hotel, "user-1")

	require.Len(t, filtered.Bookings, 2)
	assert.Equal(t, "b1", filtered.Bookings[0].ID)
	assert.Equal(t, "b3", filtered.Bookings[1].ID)
	assert.Equal(t, "Harbour View", filtered.Name)

	none := userBookings(hotel, "user-9")
	assert.Empty(t, none.Bookings)
	assert.NotNil(t, none.Bookings)
}

func deleteBookingRouter(store HotelStore) *gin.Engine {
	cfg := &config.Config{Env: "development"}
	r := gin.New()
	r.Use(middleware.Errors(cfg, zerolog.Nop()))
	r.DELETE("/api/my-bookings/:hotelId", DeleteMyBooking(store))
	return r
}

func deleteJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteMyBooking(t *testing.T) {
	hotel := &models.Hotel{
		ID: bson.NewObjectID(),
		Bookings: []models.Booking{
			{ID: "b1", UserID: "user-1"},
			{ID: "b2", UserID: "user-2"},
		},
	}
	store := newFakeHotelStore(hotel)
	r := deleteBookingRouter(store)

	w := deleteJSON(r, "/api/my-bookings/"+hotel.ID.Hex(), `{"bookingId":"b1"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, hotel.Bookings, 1)
	assert.Equal(t, "b2", hotel.Bookings[0].ID)
}

func TestDeleteMyBooking_UnknownHotel(t *testing.T) {
	r := deleteBookingRouter(newFakeHotelStore())

	w := deleteJSON(r, "/api/my-bookings/"+bson.NewObjectID().Hex(), `{"bookingId":"b1"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Can not find hotel by hotelId")
}

func TestDeleteMyBooking_MissingBookingID(t *testing.T) {
	hotel := &models.Hotel{ID: bson.NewObjectID()}
	r := deleteBookingRouter(newFakeHotelStore(hotel))

	w := deleteJSON(r, "/api/my-bookings/"+hotel.ID.Hex(), `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMyBooking_BadIdentifier(t *testing.T) {
	r := deleteBookingRouter(newFakeHotelStore())

	w := deleteJSON(r, "/api/my-bookings/not-an-id", `{"bookingId":"b1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
