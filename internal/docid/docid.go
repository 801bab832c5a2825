// Package docid wraps MongoDB's native document identifier in a value type
// that can only be built through a fallible parse. Handlers convert incoming
// path parameters with Parse before any store call, so a malformed id is
// rejected at the boundary instead of surfacing as a driver error.
package docid

import (
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalid reports that a string is not a well-formed document id.
var ErrInvalid = errors.New("invalid document id")

// ID is a validated document identifier. The zero value means "no id"
// and is omitted by bson marshaling via IsZero.
type ID struct {
	oid primitive.ObjectID
}

// New returns a freshly generated identifier.
func New() ID {
	return ID{oid: primitive.NewObjectID()}
}

// Parse converts the external 24-character hex form into an ID. Input case
// does not matter; Hex always renders the canonical lowercase form, so two
// strings that decode to the same identifier compare equal after a
// Parse/Hex round trip.
func Parse(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, ErrInvalid
	}
	return ID{oid: oid}, nil
}

// Hex returns the external lowercase hex form.
func (id ID) Hex() string {
	return id.oid.Hex()
}

// ObjectID exposes the native identifier for store queries.
func (id ID) ObjectID() primitive.ObjectID {
	return id.oid
}

// IsZero reports whether the id is unset. The bson encoder consults this
// for the omitempty struct tag.
func (id ID) IsZero() bool {
	return id.oid.IsZero()
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.oid.Hex())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalid
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.oid)
}

func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	return raw.Unmarshal(&id.oid)
}
