package models

import "gorm.io/gorm"

// TenantConfigKey is the fixed natural key of the singleton row.
const TenantConfigKey = "default"

// TenantConfig holds the business configuration of the installation.
// Exactly one row exists, keyed by TenantConfigKey; it is created or
// updated by the seeder, never deleted.
type TenantConfig struct {
	gorm.Model
	Key               string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	BusinessName      string `gorm:"size:255;not null"            json:"businessName"`
	Currency          string `gorm:"size:3;not null"              json:"currency"`
	Locale            string `gorm:"size:10;not null"             json:"locale"`
	Timezone          string `gorm:"size:64;not null"             json:"timezone"`
	QuoteValidityDays int    `gorm:"not null;default:15"          json:"quoteValidityDays"`
	ContactEmail      string `gorm:"size:255"                     json:"contactEmail"`
	ContactPhone      string `gorm:"size:50"                      json:"contactPhone"`
	ContactAddress    string `gorm:"size:500"                     json:"contactAddress"`
}
