package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-inventory/models"
)

// AvailabilityService answers date-range queries over the booking
// ledger. It never mutates state.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// overlaps reports whether the stay [aIn, aOut] conflicts with
// [bIn, bOut]. The test is inclusive on both ends: a check-out and a
// check-in on the same day count as a conflict, i.e. same-day turnover
// on one room is not supported.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !bIn.After(aOut)
}

// hasConflictingBooking is the SQL form of overlaps, run against db,
// which may be a transaction so that booking creation can check under
// its room lock. The WHERE clause must keep matching the predicate's
// inclusive boundaries.
func hasConflictingBooking(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ? AND status <> ?", roomID, models.BookingStatusCancelled).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query conflicting bookings: %w", err)
	}
	return count > 0, nil
}

// IsRoomAvailable reports whether no non-cancelled booking for the room
// overlaps [checkIn, checkOut]. Date ordering is the caller's concern.
func (s *AvailabilityService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	conflict, err := hasConflictingBooking(s.DB, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

// FindAvailableRooms returns the rooms free for the requested window.
// Stage 1 keeps rooms whose status is available or reserved — occupied
// and maintenance rooms are excluded outright, even if their bookings
// would not overlap the window. Stage 2 collects the conflicting room
// ids with a single ledger-wide query and subtracts them.
func (s *AvailabilityService) FindAvailableRooms(checkIn, checkOut time.Time, roomType string) ([]models.Room, error) {
	q := s.DB.Where("status IN ?", []string{models.RoomStatusAvailable, models.RoomStatusReserved})
	if roomType != "" {
		q = q.Where("type = ?", roomType)
	}

	var candidates []models.Room
	if err := q.Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidate rooms: %w", err)
	}

	var bookedIDs []uint
	res := s.DB.Model(&models.Booking{}).
		Distinct("room_id").
		Where("status <> ?", models.BookingStatusCancelled).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
		Pluck("room_id", &bookedIDs)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to query booked rooms: %w", res.Error)
	}

	booked := make(map[uint]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	rooms := make([]models.Room, 0, len(candidates))
	for _, room := range candidates {
		if _, taken := booked[room.ID]; !taken {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}
