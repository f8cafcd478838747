package models

import "go.mongodb.org/mongo-driver/v2/bson"

// NewID returns a fresh object id in its 24-char hex form. Both storage
// backends key records by this string.
func NewID() string {
	return bson.NewObjectID().Hex()
}

func IsValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}
