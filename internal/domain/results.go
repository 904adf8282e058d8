package domain

// InsertResult reports the outcome of inserting one document.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult reports the outcome of an update or upsert of one document.
// UpsertedID is nil unless the operation inserted a new document.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult reports how many documents a delete removed. Deleting an id
// that does not exist yields DeletedCount 0, not an error.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
