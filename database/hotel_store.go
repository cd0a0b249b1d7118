package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tripnest/bookingbackend/models"
)

// HotelStore is the booking orchestrator's view of the hotels
// collection. Booking mutations are single atomic updates against the
// identified document; there is no read-modify-write anywhere in here.
type HotelStore struct {
	hotels *mongo.Collection
}

func NewHotelStore(db *mongo.Database) *HotelStore {
	return &HotelStore{hotels: db.Collection("hotels")}
}

func (s *HotelStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.hotels.FindOne(ctx, bson.M{"_id": id}).Decode(&hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

// AppendBooking pushes one booking onto the hotel's embedded sequence.
// The bool result reports whether the hotel document exists.
func (s *HotelStore) AppendBooking(ctx context.Context, hotelID bson.ObjectID, booking models.Booking) (bool, error) {
	res, err := s.hotels.UpdateOne(ctx,
		bson.M{"_id": hotelID},
		bson.M{"$push": bson.M{"bookings": booking}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// RemoveBooking pulls the booking with the given id out of the hotel's
// embedded sequence. Other bookings are untouched.
func (s *HotelStore) RemoveBooking(ctx context.Context, hotelID bson.ObjectID, bookingID string) (bool, error) {
	res, err := s.hotels.UpdateOne(ctx,
		bson.M{"_id": hotelID},
		bson.M{"$pull": bson.M{"bookings": bson.M{"_id": bookingID}}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
