package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Hotel struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       string        `bson:"ownerId" json:"ownerId"`
	Name          string        `bson:"name" json:"name"`
	City          string        `bson:"city" json:"city"`
	Country       string        `bson:"country" json:"country"`
	Description   string        `bson:"description" json:"description"`
	Type          string        `bson:"type" json:"type"`
	AdultCount    int           `bson:"adultCount" json:"adultCount"`
	ChildCount    int           `bson:"childCount" json:"childCount"`
	Facilities    []string      `bson:"facilities" json:"facilities"`
	PricePerNight float64       `bson:"pricePerNight" json:"pricePerNight"`
	StarRating    int           `bson:"starRating" json:"starRating"`
	ImageUrls     []string      `bson:"imageUrls" json:"imageUrls"`
	LastUpdated   time.Time     `bson:"lastUpdated" json:"lastUpdated"`
	Bookings      []Booking     `bson:"bookings" json:"bookings"`
}

// Booking lives embedded inside its hotel document. Appends and removals
// go through single $push / $pull updates so concurrent bookings on the
// same hotel never lose each other.
type Booking struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	Firstname  string    `bson:"firstname" json:"firstname"`
	Lastname   string    `bson:"lastname" json:"lastname"`
	Email      string    `bson:"email" json:"email"`
	AdultCount int       `bson:"adultCount" json:"adultCount"`
	ChildCount int       `bson:"childCount" json:"childCount"`
	CheckIn    time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut   time.Time `bson:"checkOut" json:"checkOut"`
	TotalCost  float64   `bson:"totalCost" json:"totalCost"`
}
