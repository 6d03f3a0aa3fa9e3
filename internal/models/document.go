// internal/models/document.go
package models

// AssetDocument is an attachment on a persisted asset. Documents are
// immutable once uploaded; the SHA-256 hash is the tamper-evidence
// fingerprint of the stored bytes.
type AssetDocument struct {
	BaseModel
	AssetID     uint   `json:"asset_id" gorm:"not null;index"`
	FileName    string `json:"file_name" gorm:"size:255;not null"`
	ContentType string `json:"content_type" gorm:"size:100"`
	Size        int64  `json:"size" gorm:"not null"`
	Hash        string `json:"hash" gorm:"size:64;not null"`
	StorageKey  string `json:"-" gorm:"size:512;not null"`

	// Relationships
	Asset Asset `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
}

// ShortHash is the truncated fingerprint shown in listings.
func (d *AssetDocument) ShortHash() string {
	if len(d.Hash) <= 12 {
		return d.Hash
	}
	return d.Hash[:12]
}
