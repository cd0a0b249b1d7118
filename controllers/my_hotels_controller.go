package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tripnest/bookingbackend/dto"
	"github.com/tripnest/bookingbackend/httperr"
	"github.com/tripnest/bookingbackend/images"
	"github.com/tripnest/bookingbackend/middleware"
	"github.com/tripnest/bookingbackend/models"
	"github.com/tripnest/bookingbackend/utils"
)

const (
	maxHotelImages    = 6
	maxHotelImageSize = 5 << 20
)

func checkImageFiles(files []*multipart.FileHeader) *httperr.Error {
	if len(files) > maxHotelImages {
		return httperr.BadRequest("a hotel can have up to 6 images")
	}
	for _, file := range files {
		if file.Size > maxHotelImageSize {
			return httperr.BadRequest("image files can be up to 5MB each")
		}
	}
	return nil
}

func hotelFromForm(c *gin.Context) dto.HotelFormDTO {
	price, _ := strconv.ParseFloat(c.PostForm("pricePerNight"), 64)
	return dto.HotelFormDTO{
		Name:          c.PostForm("name"),
		City:          c.PostForm("city"),
		Country:       c.PostForm("country"),
		Description:   c.PostForm("description"),
		Type:          c.PostForm("type"),
		AdultCount:    utils.ParseIntDefault(c.PostForm("adultCount"), 1),
		ChildCount:    utils.ParseIntDefault(c.PostForm("childCount"), 0),
		Facilities:    c.PostFormArray("facilities"),
		PricePerNight: price,
		StarRating:    utils.ParseIntDefault(c.PostForm("starRating"), 0),
		ImageUrls:     c.PostFormArray("imageUrls"),
	}
}

// POST /api/my-hotels
func CreateMyHotel(hotels *mongo.Collection, uploader images.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			fail(c, httperr.BadRequest("invalid multipart form"))
			return
		}
		files := form.File["imageFiles"]
		if verr := checkImageFiles(files); verr != nil {
			fail(c, verr)
			return
		}

		body := hotelFromForm(c)

		imageUrls, err := images.UploadAll(c.Request.Context(), uploader, files)
		if err != nil {
			fail(c, err)
			return
		}

		hotel := models.Hotel{
			ID:            bson.NewObjectID(),
			OwnerID:       middleware.UserID(c),
			Name:          body.Name,
			City:          body.City,
			Country:       body.Country,
			Description:   body.Description,
			Type:          body.Type,
			AdultCount:    body.AdultCount,
			ChildCount:    body.ChildCount,
			Facilities:    body.Facilities,
			PricePerNight: body.PricePerNight,
			StarRating:    body.StarRating,
			ImageUrls:     imageUrls,
			LastUpdated:   time.Now().UTC(),
			Bookings:      []models.Booking{},
		}

		if _, err := hotels.InsertOne(c.Request.Context(), hotel); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"data": hotel})
	}
}

// GET /api/my-hotels
func GetMyHotels(hotels *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cursor, err := hotels.Find(ctx, bson.M{"ownerId": middleware.UserID(c)})
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

// GET /api/my-hotels/:id
func GetMyHotelByID(hotels *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			fail(c, httperr.BadRequest("invalid identifier"))
			return
		}

		var hotel models.Hotel
		err = hotels.FindOne(c.Request.Context(), bson.M{
			"_id":     id,
			"ownerId": middleware.UserID(c),
		}).Decode(&hotel)
		if err != nil {
			fail(c, httperr.NotFound("No hotel found with that id"))
			return
		}

		c.JSON(http.StatusOK, hotel)
	}
}

// PUT /api/my-hotels/:id
func UpdateMyHotel(hotels *mongo.Collection, uploader images.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			fail(c, httperr.BadRequest("invalid identifier"))
			return
		}

		var files []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil && form != nil {
			files = form.File["imageFiles"]
		}
		if verr := checkImageFiles(files); verr != nil {
			fail(c, verr)
			return
		}

		body := hotelFromForm(c)

		newUrls, err := images.UploadAll(c.Request.Context(), uploader, files)
		if err != nil {
			fail(c, err)
			return
		}
		// Freshly uploaded images first, then whatever urls the client
		// kept from the existing set.
		imageUrls := append(newUrls, body.ImageUrls...)

		update := bson.M{"$set": bson.M{
			"name":          body.Name,
			"city":          body.City,
			"country":       body.Country,
			"description":   body.Description,
			"type":          body.Type,
			"adultCount":    body.AdultCount,
			"childCount":    body.ChildCount,
			"facilities":    body.Facilities,
			"pricePerNight": body.PricePerNight,
			"starRating":    body.StarRating,
			"imageUrls":     imageUrls,
			"lastUpdated":   time.Now().UTC(),
		}}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		var hotel models.Hotel
		err = hotels.FindOneAndUpdate(c.Request.Context(), bson.M{
			"_id":     id,
			"ownerId": middleware.UserID(c),
		}, update, opts).Decode(&hotel)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				fail(c, httperr.NotFound("No hotel found with that id, can not update"))
				return
			}
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, hotel)
	}
}
