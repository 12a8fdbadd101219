package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-inventory/models"
	"hotel-inventory/utils"
)

// GuestService stores guest records. Bookings only reference guests;
// no lifecycle logic lives here.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	if err := utils.Validate.Struct(guest); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("guest %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load guest %d: %w", id, err)
	}
	return &guest, nil
}

func (s *GuestService) List() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("created_at DESC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) Update(id uint, updated *models.Guest) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := utils.Validate.Struct(updated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	guest.Name = updated.Name
	guest.Address = updated.Address
	guest.Phone = updated.Phone
	guest.Gender = updated.Gender
	guest.IDProofType = updated.IDProofType
	guest.IDNumber = updated.IDNumber
	guest.IDProofFile = updated.IDProofFile
	guest.VehicleNumber = updated.VehicleNumber
	guest.AdditionalGuests = updated.AdditionalGuests

	if err := s.DB.Save(guest).Error; err != nil {
		return nil, fmt.Errorf("failed to update guest %d: %w", id, err)
	}
	return guest, nil
}

func (s *GuestService) Delete(id uint) error {
	res := s.DB.Delete(&models.Guest{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete guest %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("guest %d: %w", id, ErrNotFound)
	}
	return nil
}
