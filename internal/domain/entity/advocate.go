package entity

import "time"

// Advocate represents one directory entry
type Advocate struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	FirstName         string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_advocates_phone_last_name,priority:2" json:"lastName"`
	City              string    `gorm:"type:varchar(100);not null" json:"city"`
	Degree            string    `gorm:"type:varchar(50);not null" json:"degree"`
	Specialties       []string  `gorm:"type:jsonb;serializer:json;not null" json:"specialties"`
	YearsOfExperience int       `gorm:"not null" json:"yearsOfExperience"`
	PhoneNumber       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_advocates_phone_last_name,priority:1" json:"phoneNumber"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Advocate) TableName() string {
	return "advocates"
}

// Key returns the practical identity of an advocate: phone number plus last name.
func (a Advocate) Key() string {
	return a.PhoneNumber + "-" + a.LastName
}
