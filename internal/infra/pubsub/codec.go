package pubsub

import (
	"encoding/json"
	"fmt"
	"reflect"
)

type Codec interface {
	Encode(value any) (data []byte, err error)
	Decode(data []byte) (value any, err error)
}

func newJSONCodec(prototype any) *JSONCodec {
	return &JSONCodec{prototype}
}

var _ Codec = &JSONCodec{}

// JSONCodec encodes any value as JSON and decodes into a fresh instance of
// the prototype's type.
type JSONCodec struct {
	prototype any
}

func (c *JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}

	return data, nil
}

func (c *JSONCodec) Decode(data []byte) (any, error) {
	pt := reflect.TypeOf(c.prototype)
	if pt.Kind() == reflect.Ptr {
		pt = pt.Elem()
	}
	instance := reflect.New(pt).Interface()
	if err := json.Unmarshal(data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling data: %w", err)
	}

	return instance, nil
}
