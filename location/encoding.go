// location/encoding.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/missioncontrol/measure/measure"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// JSON stores locations as strings for friendliness; geographic
// locations are written in degrees, minutes and seconds. An array of
// decimal degrees [lat, lon] or [lat, lon, alt] is also accepted.

var jsonFormat = NewFormat(measure.DegreeMinuteSecond)

func (l Location) MarshalJSON() ([]byte, error) {
	if !l.IsValid() {
		return []byte("null"), nil
	}
	return json.Marshal(jsonFormat.Format(l))
}

func (l *Location) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = Location{}
		return nil

	case len(b) > 0 && b[0] == '[':
		var ll []float64
		if err := json.Unmarshal(b, &ll); err != nil {
			return err
		}
		if len(ll) != 2 && len(ll) != 3 {
			return fmt.Errorf("%w: expected 2 or 3 coordinates, got %d", ErrInvalidLocation, len(ll))
		}
		*l = FromLatLon(ll[0], ll[1])
		if len(ll) == 3 {
			l.SetZ(measure.Of(ll[2], measure.Meter))
		}
		return nil

	default:
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		loc, err := jsonFormat.Parse(s)
		if err != nil {
			return err
		}
		*l = loc
		return nil
	}
}

var (
	_ msgpack.CustomEncoder = Location{}
	_ msgpack.CustomDecoder = (*Location)(nil)
)

// EncodeMsgpack writes [xValue, xUnit, yValue, yUnit, zValue, zUnit], with
// nil z fields if there is no altitude. The zero Location is nil.
func (l Location) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !l.IsValid() {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(6); err != nil {
		return err
	}
	for _, v := range []measure.VariantQuantity{l.x, l.y} {
		if err := enc.EncodeFloat64(v.Value()); err != nil {
			return err
		}
		if err := enc.EncodeString(v.Unit().Name()); err != nil {
			return err
		}
	}

	if !l.hasZ {
		if err := enc.EncodeNil(); err != nil {
			return err
		}
		return enc.EncodeNil()
	}
	if err := enc.EncodeFloat64(l.z.Value()); err != nil {
		return err
	}
	return enc.EncodeString(l.z.Unit().Name())
}

func (l *Location) DecodeMsgpack(dec *msgpack.Decoder) error {
	if c, err := dec.PeekCode(); err != nil {
		return err
	} else if c == msgpcode.Nil {
		*l = Location{}
		return dec.DecodeNil()
	}

	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 6 {
		return fmt.Errorf("%w: expected 6-element array, got %d", ErrInvalidLocation, n)
	}

	var xy [2]measure.VariantQuantity
	for i := range xy {
		value, err := dec.DecodeFloat64()
		if err != nil {
			return err
		}
		name, err := dec.DecodeString()
		if err != nil {
			return err
		}
		unit, ok := measure.UnitByName(name)
		if !ok {
			return fmt.Errorf("%w: %q", measure.ErrUnknownUnit, name)
		}
		xy[i] = measure.VariantOf(value, unit)
	}

	var zValue *float64
	var zUnit *string
	if err := dec.Decode(&zValue); err != nil {
		return err
	}
	if err := dec.Decode(&zUnit); err != nil {
		return err
	}

	loc, err := FromVariants(xy[0], xy[1])
	if err != nil {
		return err
	}
	if zValue != nil && zUnit != nil {
		u, ok := measure.UnitByName(*zUnit)
		if !ok {
			return fmt.Errorf("%w: %q", measure.ErrUnknownUnit, *zUnit)
		}
		z, err := measure.Typed[measure.Length](measure.VariantOf(*zValue, u))
		if err != nil {
			return err
		}
		loc.SetZ(z)
	}
	*l = loc
	return nil
}
