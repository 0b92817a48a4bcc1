package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Store-specific
// failures (gorm.ErrRecordNotFound, mongo.ErrNoDocuments, unique index
// violations) are translated to these so callers can errors.Is without
// knowing which store a row lives in.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
