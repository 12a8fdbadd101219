package services

import (
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-inventory/models"
	"hotel-inventory/utils"
)

// RoomService owns Room records and the room status field.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilter narrows List. MinPrice/MaxPrice are inclusive bounds.
type RoomFilter struct {
	Type     string
	Status   string
	MinPrice *float64
	MaxPrice *float64
}

const mysqlDuplicateEntry = 1062

// isDuplicateKey detects a unique-index violation on room_number. The
// driver error code is the reliable signal; the string check covers
// other SQL backends in tests.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if err := utils.Validate.Struct(room); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var existing models.Room
	err := s.DB.Where("room_number = ?", room.RoomNumber).First(&existing).Error
	if err == nil {
		return ErrRoomNumberTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check room number: %w", err)
	}

	if err := s.DB.Create(room).Error; err != nil {
		// unique index backstop against a concurrent create
		if isDuplicateKey(err) {
			return ErrRoomNumberTaken
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// List returns rooms matching the filter, ordered by room number.
func (s *RoomService) List(f RoomFilter) ([]models.Room, error) {
	q := s.DB.Order("room_number ASC")
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// Update replaces the mutable fields of a room. The duplicate-number
// guard re-runs only when the number actually changes.
func (s *RoomService) Update(id uint, updated *models.Room) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated.RoomNumber = strings.TrimSpace(updated.RoomNumber)
	if updated.Status == "" {
		updated.Status = room.Status
	}
	if err := utils.Validate.Struct(updated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if updated.RoomNumber != room.RoomNumber {
		var other models.Room
		err := s.DB.Where("room_number = ? AND id <> ?", updated.RoomNumber, id).First(&other).Error
		if err == nil {
			return nil, ErrRoomNumberTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check room number: %w", err)
		}
	}

	room.RoomNumber = updated.RoomNumber
	room.Type = updated.Type
	room.Status = updated.Status
	room.Price = updated.Price
	room.Capacity = updated.Capacity
	room.Amenities = updated.Amenities
	room.Images = updated.Images
	room.Description = updated.Description

	if err := s.DB.Save(room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return room, nil
}

// Delete removes a room unless a confirmed or checked-in booking still
// references it.
func (s *RoomService) Delete(id uint) error {
	var open int64
	err := s.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", id,
			[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&open).Error
	if err != nil {
		return fmt.Errorf("failed to check open bookings for room %d: %w", id, err)
	}
	if open > 0 {
		return ErrRoomInUse
	}

	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetStatus writes the room status directly. No transition validation:
// any status may follow any other, so an operator can correct state by
// hand (e.g. after maintenance). Lifecycle events overwrite it later.
func (s *RoomService) SetStatus(id uint, status string) (*models.Room, error) {
	if !models.IsValidRoomStatus(status) {
		return nil, fmt.Errorf("%w: invalid room status %q", ErrInvalidInput, status)
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(room).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to set status of room %d: %w", id, err)
	}
	room.Status = status
	return room, nil
}
