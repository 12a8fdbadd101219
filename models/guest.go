package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	IDProofPassport       = "passport"
	IDProofDriversLicense = "drivers_license"
	IDProofNationalID     = "national_id"
	IDProofOther          = "other"
)

// Guest is the reference target of a Booking. Identity-document files
// are stored elsewhere; IDProofFile only carries the path.
type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `json:"name" validate:"required"`
	Address string `json:"address" gorm:"type:text" validate:"required"`
	Phone   string `json:"phone" gorm:"size:32" validate:"required"`
	Gender  string `json:"gender" gorm:"size:16" validate:"required,oneof=male female other"`

	IDProofType string `json:"idProofType" gorm:"column:id_proof_type;size:32" validate:"required,oneof=passport drivers_license national_id other"`
	IDNumber    string `json:"idNumber" gorm:"column:id_number;size:64" validate:"required"`
	IDProofFile string `json:"idProofFile" gorm:"column:id_proof_file" validate:"required"`

	VehicleNumber string `json:"vehicleNumber,omitempty" gorm:"column:vehicle_number;size:32"`

	// Co-occupants as entered at the desk: [{name, age, gender}, ...].
	AdditionalGuests datatypes.JSON `json:"additionalGuests,omitempty" gorm:"column:additional_guests"`
}
