package db_models

import (
	"gorm.io/datatypes"
)

// Client is one purchase/contract row. The same phone number appears once
// per purchase, so resolving a user means merging all of its rows.
type Client struct {
	BaseModel
	PhoneNumber        string `gorm:"index"`
	ClientName         string
	ClientPassword     string
	PurchaseDate       string
	DurationMonths     int
	Subscriptions      ServiceList `gorm:"type:jsonb"`
	IsDebtor           bool
	IsContacted        bool
	Deleted            bool
	OverrideExpiration bool
	GameProgress       datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

func (Client) TableName() string { return "clients" }
