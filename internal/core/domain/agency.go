package domain

import "time"

// Client is a traveller profile linked to a CLIENT user account.
type Client struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
	Phone          string `json:"phone"`
	UserID         int64  `json:"user_id"`
}

// Guide is a tour-guide profile linked to a GUIDE user account.
type Guide struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	UserID   int64  `json:"user_id"`
}

// Country is a destination a tour can visit.
type Country struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Tour is a scheduled trip run by a guide. The owning user of a tour is
// the guide's linked user account.
type Tour struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CountryID int64     `json:"country_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Price     float64   `json:"price"`
	GuideID   int64     `json:"guide_id"`
}

// Booking records that a client reserved a tour on a given date. The
// owning user of a booking is the client's linked user account.
type Booking struct {
	ID          int64     `json:"id"`
	TourID      int64     `json:"tour_id"`
	ClientID    int64     `json:"client_id"`
	BookingDate time.Time `json:"booking_date"`
}
