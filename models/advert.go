package models

import "time"

// CaptionMaxLength is the maximum number of characters allowed in an advert
// caption. Mirrors the varchar(100) column constraint.
const CaptionMaxLength = 100

// Advert represents a classified-ad listing owned by exactly one user.
// Ownership is immutable after creation: no operation changes OwnerID.
type Advert struct {
	// AdvertID is the internal unique identifier of the advert,
	// assigned by the database on insert.
	AdvertID int64 `json:"id"`

	// Caption is the short title of the listing, at most
	// [CaptionMaxLength] characters.
	Caption string `json:"caption"`

	// Description is the free-form body text of the listing.
	Description string `json:"description"`

	// OwnerID references the user that created the advert. The foreign key
	// is enforced by the database.
	OwnerID int64 `json:"owner_id"`

	// CreatedAt is assigned by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Advert model.
func (a Advert) TableName() string {
	return "adverts"
}
