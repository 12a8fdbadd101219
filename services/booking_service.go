package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-inventory/models"
	"hotel-inventory/utils"
)

// BookingService owns Booking records and drives the room status
// writes coupled to booking transitions. It works on the shared gorm
// handle passed in at construction; room rows are read and written
// through that handle, never through a package-level store.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// lockRoom loads the room row FOR UPDATE so that concurrent bookings
// for the same room serialize on it. The availability check and the
// insert then share one commit point.
func lockRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", roomID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock room %d: %w", roomID, err)
	}
	return &room, nil
}

// Create validates and commits a new booking in confirmed state. The
// conflict check runs inside the transaction, under the room lock: two
// racing requests for overlapping dates cannot both pass it. If the
// stay starts today the room is marked reserved in the same commit.
func (s *BookingService) Create(b *models.Booking) error {
	b.CheckInDate = utils.StartOfDay(b.CheckInDate)
	b.CheckOutDate = utils.StartOfDay(b.CheckOutDate)
	b.Status = models.BookingStatusConfirmed
	b.ReferenceCode = uuid.NewString()

	if !b.CheckOutDate.After(b.CheckInDate) {
		return fmt.Errorf("%w: check-in date must be before check-out date", ErrInvalidInput)
	}
	if err := utils.Validate.Struct(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, b.RoomID)
		if err != nil {
			return err
		}

		var guest models.Guest
		if err := tx.First(&guest, b.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("guest %d: %w", b.GuestID, ErrNotFound)
			}
			return fmt.Errorf("failed to load guest %d: %w", b.GuestID, err)
		}

		conflict, err := hasConflictingBooking(tx, b.RoomID, b.CheckInDate, b.CheckOutDate)
		if err != nil {
			return err
		}
		if conflict {
			return ErrRoomNotAvailable
		}

		if err := tx.Create(b).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if utils.SameDay(b.CheckInDate, time.Now()) {
			if err := tx.Model(room).Update("status", models.RoomStatusReserved).Error; err != nil {
				return fmt.Errorf("failed to reserve room %d: %w", room.ID, err)
			}
		}
		return nil
	})
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").Preload("Guest").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	return &booking, nil
}

func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room").Preload("Guest").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Update changes the mutable fields of a booking. Dates and the
// room/guest references are immutable after create; a date change is
// modeled as cancel plus re-create so it passes the availability check.
func (s *BookingService) Update(id uint, totalAmount, paidAmount float64, specialRequests string) (*models.Booking, error) {
	if totalAmount < 0 || paidAmount < 0 {
		return nil, fmt.Errorf("%w: amounts must be non-negative", ErrInvalidInput)
	}

	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(booking).Updates(map[string]interface{}{
		"total_amount":     totalAmount,
		"paid_amount":      paidAmount,
		"special_requests": specialRequests,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	booking.TotalAmount = totalAmount
	booking.PaidAmount = paidAmount
	booking.SpecialRequests = specialRequests
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	res := s.DB.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	return nil
}

// CheckIn moves a confirmed booking to checked-in and its room to
// occupied, in one transaction.
func (s *BookingService) CheckIn(id uint) (*models.Booking, error) {
	return s.transition(id, models.BookingStatusConfirmed, models.BookingStatusCheckedIn, models.RoomStatusOccupied)
}

// CheckOut moves a checked-in booking to checked-out and its room back
// to available, in one transaction.
func (s *BookingService) CheckOut(id uint) (*models.Booking, error) {
	return s.transition(id, models.BookingStatusCheckedIn, models.BookingStatusCheckedOut, models.RoomStatusAvailable)
}

func (s *BookingService) transition(id uint, from, to, roomStatus string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("booking %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to load booking %d: %w", id, err)
		}
		if booking.Status != from {
			return fmt.Errorf("%w: booking %d is %s, want %s", ErrInvalidTransition, id, booking.Status, from)
		}

		room, err := lockRoom(tx, booking.RoomID)
		if err != nil {
			return err
		}

		// Both writes commit together or not at all; the room status
		// can never run ahead of the booking status.
		if err := tx.Model(room).Update("status", roomStatus).Error; err != nil {
			return fmt.Errorf("failed to set room %d %s: %w", room.ID, roomStatus, err)
		}
		if err := tx.Model(&booking).Update("status", to).Error; err != nil {
			return fmt.Errorf("failed to set booking %d %s: %w", id, to, err)
		}
		booking.Status = to
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel moves a confirmed booking to cancelled, freeing its dates for
// the overlap check. The only room-status effect is undoing a same-day
// reserved mark: if the stay starts today and the room still sits in
// reserved, it returns to available. Any other room state was written
// by another actor and is left alone.
func (s *BookingService) Cancel(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("booking %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to load booking %d: %w", id, err)
		}
		if booking.Status != models.BookingStatusConfirmed {
			return fmt.Errorf("%w: booking %d is %s, only confirmed bookings can be cancelled",
				ErrInvalidTransition, id, booking.Status)
		}

		room, err := lockRoom(tx, booking.RoomID)
		if err != nil {
			return err
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to cancel booking %d: %w", id, err)
		}
		booking.Status = models.BookingStatusCancelled

		if room.Status == models.RoomStatusReserved && utils.SameDay(booking.CheckInDate, time.Now()) {
			if err := tx.Model(room).Update("status", models.RoomStatusAvailable).Error; err != nil {
				return fmt.Errorf("failed to release room %d: %w", room.ID, err)
			}
			log.Printf("booking %d cancelled, room %s released", id, room.RoomNumber)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
