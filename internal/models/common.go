// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields. Asset ids are server-assigned integers.
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type AssetType string

const (
	AssetTypeVehicle     AssetType = "vehicle"
	AssetTypeWatch       AssetType = "watch"
	AssetTypeElectronics AssetType = "electronics"
	AssetTypeArt         AssetType = "art"
	AssetTypeInstrument  AssetType = "instrument"
	AssetTypeOther       AssetType = "other"
)

func AssetTypes() []AssetType {
	return []AssetType{
		AssetTypeVehicle,
		AssetTypeWatch,
		AssetTypeElectronics,
		AssetTypeArt,
		AssetTypeInstrument,
		AssetTypeOther,
	}
}

func (t AssetType) Valid() bool {
	for _, known := range AssetTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type AssetStatus string

const (
	AssetStatusDraft    AssetStatus = "draft"
	AssetStatusVerified AssetStatus = "verified"
	AssetStatusMinted   AssetStatus = "minted"
)

// Lifecycle order: DRAFT -> VERIFIED -> MINTED, no transition backward.
var statusRank = map[AssetStatus]int{
	AssetStatusDraft:    0,
	AssetStatusVerified: 1,
	AssetStatusMinted:   2,
}

func (s AssetStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal
// single forward step in the asset lifecycle.
func (s AssetStatus) CanTransitionTo(next AssetStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)
