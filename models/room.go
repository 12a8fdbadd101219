package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room statuses. The direct status-set operation accepts any of these
// in any order; booking lifecycle events additionally drive
// available/reserved/occupied and overwrite manual values.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusReserved    = "reserved"
)

const (
	RoomTypeSingle       = "single"
	RoomTypeDouble       = "double"
	RoomTypeTwin         = "twin"
	RoomTypeSuite        = "suite"
	RoomTypeDeluxe       = "deluxe"
	RoomTypePresidential = "presidential"
)

func IsValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusReserved:
		return true
	}
	return false
}

func IsValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTwin, RoomTypeSuite, RoomTypeDeluxe, RoomTypePresidential:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	// The unique index spans soft-deleted rows: a deleted room keeps
	// its number, so the number cannot be reassigned to a new room.
	// (MySQL unique indexes admit repeated NULLs, so widening the index
	// over deleted_at would stop guarding live rows.)
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)" validate:"required"`

	Type     string  `json:"type" gorm:"size:32" validate:"required,oneof=single double twin suite deluxe presidential"`
	Status   string  `json:"status" gorm:"size:32;default:available" validate:"omitempty,oneof=available occupied maintenance reserved"`
	Price    float64 `json:"price" validate:"gte=0"`
	Capacity int     `json:"capacity" gorm:"column:capacity" validate:"gte=1"`

	Amenities   datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
	Images      datatypes.JSON `json:"images,omitempty" gorm:"column:images"`
	Description string         `json:"description" gorm:"type:text"`
}
