package dto

import "time"

type CreatePaymentIntentDTO struct {
	NumberOfNights int `json:"numberOfNights"`
}

type CreateBookingDTO struct {
	PaymentIntentID string    `json:"paymentIntentId"`
	Firstname       string    `json:"firstname"`
	Lastname        string    `json:"lastname"`
	Email           string    `json:"email"`
	AdultCount      int       `json:"adultCount"`
	ChildCount      int       `json:"childCount"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	TotalCost       float64   `json:"totalCost"`
}

type DeleteBookingDTO struct {
	BookingID string `json:"bookingId"`
}
