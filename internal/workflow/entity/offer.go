package entity

import (
	"time"
)

// OkForLaunch is the launch release sheet: a sign-off checkin plus an
// uploaded release document.
type OkForLaunch struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	CheckinID  *string    `json:"checkin_id" gorm:"size:36"`
	Check      bool       `json:"check" gorm:"not null;default:false"`
	Date       *time.Time `json:"date"`
	Comments   string     `json:"comments" gorm:"type:text"`
	UploadPath string     `json:"upload_path" gorm:"size:500"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Checkin *Checkin `json:"checkin,omitempty" gorm:"foreignKey:CheckinID"`
}

func (OkForLaunch) TableName() string {
	return "ok_for_launches"
}

// ValidationForOffer is the commercial offer validation sheet.
type ValidationForOffer struct {
	ID         string     `json:"id" gorm:"primaryKey;size:36"`
	CheckinID  *string    `json:"checkin_id" gorm:"size:36"`
	Name       string     `json:"name" gorm:"size:200"`
	Check      bool       `json:"check" gorm:"not null;default:false"`
	Date       *time.Time `json:"date"`
	Comments   string     `json:"comments" gorm:"type:text"`
	UploadPath string     `json:"upload_path" gorm:"size:500"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Checkin *Checkin `json:"checkin,omitempty" gorm:"foreignKey:CheckinID"`
}

func (ValidationForOffer) TableName() string {
	return "validation_for_offers"
}
