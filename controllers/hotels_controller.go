package controllers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tripnest/bookingbackend/dto"
	"github.com/tripnest/bookingbackend/httperr"
	"github.com/tripnest/bookingbackend/middleware"
	"github.com/tripnest/bookingbackend/models"
	"github.com/tripnest/bookingbackend/payments"
)

const bookingCurrency = "gbp"

// HotelStore is what the booking orchestrator needs from the hotels
// collection. Implemented by database.HotelStore.
type HotelStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Hotel, error)
	AppendBooking(ctx context.Context, hotelID bson.ObjectID, booking models.Booking) (bool, error)
	RemoveBooking(ctx context.Context, hotelID bson.ObjectID, bookingID string) (bool, error)
}

// GET /api/hotels
func GetLatestHotels(hotels *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		opts := options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}})
		cursor, err := hotels.Find(ctx, bson.M{}, opts)
		if err != nil {
			fail(c, err)
			return
		}

		list := make([]models.Hotel, 0)
		if err := cursor.All(ctx, &list); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GET /api/hotels/search
func SearchHotels(hotels *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		params := parseSearchParams(c)

		filter := buildSearchFilter(params)
		opts := options.Find().
			SetSkip(int64((params.Page - 1) * searchPageSize)).
			SetLimit(searchPageSize)
		if sort := buildSearchSort(params.SortOption); sort != nil {
			opts = opts.SetSort(sort)
		}

		cursor, err := hotels.Find(ctx, filter, opts)
		if err != nil {
			fail(c, err)
			return
		}

		list := make([]models.Hotel, 0)
		if err := cursor.All(ctx, &list); err != nil {
			fail(c, err)
			return
		}

		total, err := hotels.CountDocuments(ctx, filter)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": list,
			"pagination": gin.H{
				"total": total,
				"page":  params.Page,
				"pages": totalPages(total),
			},
		})
	}
}

// GET /api/hotels/:id
func GetHotelByID(hotels *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			fail(c, httperr.BadRequest("invalid identifier"))
			return
		}

		var hotel models.Hotel
		if err := hotels.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&hotel); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				fail(c, httperr.NotFound("Can not find hotel by this id."))
				return
			}
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, hotel)
	}
}

// POST /api/hotels/:hotelId/bookings/payment-intent
func CreatePaymentIntent(store HotelStore, pay payments.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, err := bson.ObjectIDFromHex(c.Param("hotelId"))
		if err != nil {
			fail(c, httperr.BadRequest("invalid identifier"))
			return
		}

		var body dto.CreatePaymentIntentDTO
		if err := c.ShouldBindJSON(&body); err != nil || body.NumberOfNights < 1 {
			fail(c, httperr.BadRequest("numberOfNights must be a positive number"))
			return
		}

		hotel, err := store.FindByID(c.Request.Context(), hotelID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				fail(c, httperr.NotFound("Can not find hotel by this id."))
				return
			}
			fail(c, err)
			return
		}

		totalCost := hotel.PricePerNight * float64(body.NumberOfNights)
		amountMinorUnits := int64(math.Round(totalCost * 100))

		intent, err := pay.CreateIntent(c.Request.Context(), amountMinorUnits, bookingCurrency, map[string]string{
			"hotelId": hotelID.Hex(),
			"userId":  middleware.UserID(c),
		})
		if err != nil {
			fail(c, err)
			return
		}
		if intent.ClientSecret == "" {
			fail(c, httperr.Internal("Error creating paymentIntent"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"paymentIntentId": intent.ID,
			"clientSecret":    intent.ClientSecret,
			"totalCost":       totalCost,
		})
	}
}

// verifyBookingIntent runs the three commit checks in order: the
// intent exists, its metadata matches the route hotel and the
// authenticated subject, and its status is the success sentinel.
func verifyBookingIntent(intent *payments.Intent, hotelID, userID string) *httperr.Error {
	if intent == nil {
		return httperr.BadRequest("payment intent not found")
	}
	if intent.Metadata["hotelId"] != hotelID || intent.Metadata["userId"] != userID {
		return httperr.BadRequest("payment intent mismatch")
	}
	if intent.Status != payments.StatusSucceeded {
		return httperr.BadRequest(fmt.Sprintf("payment intent not succeeded. Status: %s", intent.Status))
	}
	return nil
}

// POST /api/hotels/:hotelId/bookings
func CreateBooking(store HotelStore, pay payments.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, err := bson.ObjectIDFromHex(c.Param("hotelId"))
		if err != nil {
			fail(c, httperr.BadRequest("invalid identifier"))
			return
		}

		var body dto.CreateBookingDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			fail(c, httperr.BadRequest("invalid request body"))
			return
		}

		// Re-fetch authoritative payment state; client-reported
		// success is never trusted.
		intent, err := pay.RetrieveIntent(c.Request.Context(), body.PaymentIntentID)
		if err != nil {
			fail(c, httperr.BadRequest("payment intent not found"))
			return
		}

		userID := middleware.UserID(c)
		if verr := verifyBookingIntent(intent, hotelID.Hex(), userID); verr != nil {
			fail(c, verr)
			return
		}

		booking := models.Booking{
			ID:         uuid.NewString(),
			UserID:     userID,
			Firstname:  body.Firstname,
			Lastname:   body.Lastname,
			Email:      body.Email,
			AdultCount: body.AdultCount,
			ChildCount: body.ChildCount,
			CheckIn:    body.CheckIn,
			CheckOut:   body.CheckOut,
			TotalCost:  body.TotalCost,
		}

		found, err := store.AppendBooking(c.Request.Context(), hotelID, booking)
		if err != nil {
			fail(c, err)
			return
		}
		if !found {
			fail(c, httperr.NotFound("hotel not found"))
			return
		}

		c.Status(http.StatusOK)
	}
}
