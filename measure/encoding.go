// measure/encoding.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Quantities are serialized as their value together with the unit's Name;
// JSON uses an object and msgpack a two-element array.

type quantityJSON struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func lookupUnit(name string) (AnyUnit, error) {
	if name == "" {
		return AnyUnit{}, nil
	}
	u, ok := UnitByName(name)
	if !ok {
		return AnyUnit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

func (v VariantQuantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(quantityJSON{Value: v.value, Unit: v.unit.Name()})
}

func (v *VariantQuantity) UnmarshalJSON(b []byte) error {
	var qj quantityJSON
	if err := json.Unmarshal(b, &qj); err != nil {
		return err
	}
	u, err := lookupUnit(qj.Unit)
	if err != nil {
		return err
	}
	*v = VariantOf(qj.Value, u)
	return nil
}

func (q Quantity[D]) MarshalJSON() ([]byte, error) {
	return q.ToVariant().MarshalJSON()
}

func (q *Quantity[D]) UnmarshalJSON(b []byte) error {
	var v VariantQuantity
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	return q.setVariant(v)
}

func (q *Quantity[D]) setVariant(v VariantQuantity) error {
	if !v.unit.IsValid() {
		*q = Quantity[D]{}
		return nil
	}
	tq, err := Typed[D](v)
	if err != nil {
		return err
	}
	*q = tq
	return nil
}

var (
	_ msgpack.CustomEncoder = VariantQuantity{}
	_ msgpack.CustomDecoder = (*VariantQuantity)(nil)
)

func (v VariantQuantity) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeFloat64(v.value); err != nil {
		return err
	}
	return enc.EncodeString(v.unit.Name())
}

func (v *VariantQuantity) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: expected 2-element array, got %d", ErrInvalidQuantity, n)
	}
	value, err := dec.DecodeFloat64()
	if err != nil {
		return err
	}
	name, err := dec.DecodeString()
	if err != nil {
		return err
	}
	u, err := lookupUnit(name)
	if err != nil {
		return err
	}
	*v = VariantOf(value, u)
	return nil
}

func (q Quantity[D]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return q.ToVariant().EncodeMsgpack(enc)
}

func (q *Quantity[D]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var v VariantQuantity
	if err := v.DecodeMsgpack(dec); err != nil {
		return err
	}
	return q.setVariant(v)
}
