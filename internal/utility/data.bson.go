package utility

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToMap round-trips s through BSON so the keys are the bson tag names.
func ToMap(s interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal: %w", err)
	}
	var out map[string]interface{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("bson unmarshal: %w", err)
	}
	return out, nil
}

// SetFields returns the $set document for s, leaving out the listed keys.
func SetFields(s interface{}, exclude ...string) (bson.M, error) {
	m, err := ToMap(s)
	if err != nil {
		return nil, err
	}
	for _, key := range exclude {
		delete(m, key)
	}
	return bson.M(m), nil
}

// StampTimestamps sets created_at when absent and always refreshes updated_at.
func StampTimestamps(m map[string]interface{}, now time.Time) {
	if v, ok := m["created_at"]; !ok || isZeroTime(v) {
		m["created_at"] = now
	}
	m["updated_at"] = now
}

func isZeroTime(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case time.Time:
		return t.IsZero()
	case primitive.DateTime:
		return t.Time().IsZero() || t == primitive.NewDateTimeFromTime(time.Time{})
	}
	return false
}

// ContainsInsensitive builds {$regex, $options:"i"} matching value literally.
func ContainsInsensitive(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

// EqualsInsensitive matches value exactly, ignoring case.
func EqualsInsensitive(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

// SearchFilter ORs a case-insensitive substring match over fields.
// An empty search or field list matches everything.
func SearchFilter(search string, fields ...string) bson.M {
	if search == "" || len(fields) == 0 {
		return bson.M{}
	}
	if len(fields) == 1 {
		return bson.M{fields[0]: ContainsInsensitive(search)}
	}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: ContainsInsensitive(search)})
	}
	return bson.M{"$or": or}
}
