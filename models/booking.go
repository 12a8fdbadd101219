package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Booking statuses. confirmed is the initial state; checked-out and
// cancelled are terminal.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
)

func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminalBookingStatus reports whether no further transitions are
// allowed out of the given status.
func IsTerminalBookingStatus(s string) bool {
	return s == BookingStatusCheckedOut || s == BookingStatusCancelled
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID  uint `gorm:"column:room_id;index" json:"roomId" validate:"required"`
	GuestID uint `gorm:"column:guest_id;index" json:"guestId" validate:"required"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`
	Status        string `gorm:"column:status;size:32;default:confirmed" json:"status"`

	// Calendar dates, stored truncated to midnight.
	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate" validate:"required"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate" validate:"required,gtfield=CheckInDate"`

	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount" validate:"gte=0"`
	// PaidAmount may exceed TotalAmount (overpayment is settled at the desk).
	PaidAmount      float64 `gorm:"column:paid_amount;default:0" json:"paidAmount" validate:"gte=0"`
	SpecialRequests string  `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Guest Guest `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
}

// NumberOfNights is derived, not stored: ceil of the stay length in days.
func (b *Booking) NumberOfNights() int {
	return int(math.Ceil(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24))
}

// BalanceAmount is derived, not stored.
func (b *Booking) BalanceAmount() float64 {
	return b.TotalAmount - b.PaidAmount
}
