// internal/models/asset.go
package models

import (
	"github.com/lib/pq"
)

type Asset struct {
	BaseModel
	OwnerID      uint           `json:"owner_id" gorm:"not null;index"`
	OwnerAddress string         `json:"owner_address" gorm:"size:42;not null;index"`
	Type         AssetType      `json:"type" gorm:"type:varchar(20);not null;index"`
	Status       AssetStatus    `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	Metadata     JSONB          `json:"metadata" gorm:"type:jsonb"`
	IsFavorite   bool           `json:"is_favorite" gorm:"default:false"`
	ImageURLs    pq.StringArray `json:"image_urls" gorm:"type:text[]"`

	// Set by the anchoring pipeline. TokenID only after a successful mint.
	TokenID      *uint64 `json:"token_id,omitempty" gorm:"uniqueIndex"`
	AnchorHash   string  `json:"anchor_hash,omitempty" gorm:"size:66"`
	AnchorTxHash string  `json:"anchor_tx_hash,omitempty" gorm:"size:66"`

	// Relationships
	Owner     User            `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Documents []AssetDocument `json:"documents,omitempty" gorm:"foreignKey:AssetID"`
}

// Name returns the display name stored in metadata, if any.
func (a *Asset) Name() string {
	if a.Metadata == nil {
		return ""
	}
	if name, ok := a.Metadata[MetaName].(string); ok {
		return name
	}
	return ""
}

// SerialNumber returns the serial number stored in metadata, if any.
func (a *Asset) SerialNumber() string {
	if a.Metadata == nil {
		return ""
	}
	if sn, ok := a.Metadata[MetaSerialNumber].(string); ok {
		return sn
	}
	return ""
}
