package helper

// UpdateResult: bentuk hasil update yang sama untuk semua driver storage.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// InsertResult: {insertedId} seperti hasil insertOne.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}
