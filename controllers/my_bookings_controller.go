package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tripnest/bookingbackend/dto"
	"github.com/tripnest/bookingbackend/httperr"
	"github.com/tripnest/bookingbackend/middleware"
	"github.com/tripnest/bookingbackend/models"
)

// userBookings filters a hotel's embedded sequence down to one user's
// bookings.
func userBookings(hotel models.Hotel, userID string) models.Hotel {
	filtered := make([]models.Booking, 0)
	for _, booking := range hotel.Bookings {
		if booking.UserID == userID {
			filtered = append(filtered, booking)
		}
	}
	hotel.Bookings = filtered
	return hotel
}

// GET /api/my-bookings
func GetMyBookings(hotels *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := middleware.UserID(c)

		cursor, err := hotels.Find(ctx, bson.M{
			"bookings": bson.M{"$elemMatch": bson.M{"userId": userID}},
		})
		if err != nil {
			fail(c, err)
			return
		}

		list := make([]models.Hotel, 0)
		if err := cursor.All(ctx, &list); err != nil {
			fail(c, err)
			return
		}
		if len(list) == 0 {
			fail(c, httperr.NotFound("Can not find bookings"))
			return
		}

		result := make([]models.Hotel, 0, len(list))
		for _, hotel := range list {
			result = append(result, userBookings(hotel, userID))
		}

		c.JSON(http.StatusOK, result)
	}
}

// DELETE /api/my-bookings/:hotelId
func DeleteMyBooking(store HotelStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, err := bson.ObjectIDFromHex(c.Param("hotelId"))
		if err != nil {
			fail(c, httperr.BadRequest("invalid identifier"))
			return
		}

		var body dto.DeleteBookingDTO
		if err := c.ShouldBindJSON(&body); err != nil || body.BookingID == "" {
			fail(c, httperr.BadRequest("bookingId is required"))
			return
		}

		found, err := store.RemoveBooking(c.Request.Context(), hotelID, body.BookingID)
		if err != nil {
			fail(c, err)
			return
		}
		if !found {
			fail(c, httperr.NotFound("Can not find hotel by hotelId"))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
