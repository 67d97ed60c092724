package repository

import (
	"beautytime/internal/common"
	"beautytime/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID maps a malformed hex id to ErrNotFound, matching the API contract
// that a garbage id behaves like a missing document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrNotFound
	}
	return oid, nil
}

func sortSpec(fields []models.SortField, fallback bson.D) bson.D {
	if len(fields) == 0 {
		return fallback
	}
	spec := bson.D{}
	for _, f := range fields {
		dir := 1
		if f.Desc {
			dir = -1
		}
		spec = append(spec, bson.E{Key: f.Field, Value: dir})
	}
	return spec
}
