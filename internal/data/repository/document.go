package repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents in the stores are written by other services, so field types
// vary. These helpers read a field leniently and fall back to a zero value.

func stringifyID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		if id.IsZero() {
			return ""
		}
		return id.Hex()
	case string:
		return id
	case primitive.Binary:
		return fmt.Sprintf("%x", id.Data)
	default:
		return fmt.Sprint(id)
	}
}

func stringField(doc bson.M, key string) string {
	switch s := doc[key].(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func numberField(doc bson.M, key string) float64 {
	switch n := doc[key].(type) {
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	case primitive.Decimal128:
		f, err := decimal128ToFloat(n)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func decimal128ToFloat(d primitive.Decimal128) (float64, error) {
	v, err := decimal.NewFromString(d.String())
	if err != nil {
		return 0, err
	}
	f, _ := v.Float64()
	return f, nil
}

func boolField(doc bson.M, key string) bool {
	b, _ := doc[key].(bool)
	return b
}

func timeField(doc bson.M, key string) *time.Time {
	switch t := doc[key].(type) {
	case primitive.DateTime:
		v := t.Time().UTC()
		return &v
	case time.Time:
		v := t.UTC()
		return &v
	default:
		return nil
	}
}
