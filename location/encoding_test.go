// location/encoding_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package location

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/missioncontrol/measure/measure"

	"github.com/vmihailenco/msgpack/v5"
)

func TestLocationJSON(t *testing.T) {
	in := Geographic3(measure.Of(40.6328888, measure.Degree), measure.Of(-73.771385, measure.Degree),
		measure.Of(4, measure.Meter))
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[0] != '"' {
		t.Errorf("expected a string, got %s", b)
	}

	var out Location
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("%s: unexpected error: %v", b, err)
	}
	lat, lon := latLon(t, out)
	if math.Abs(lat-40.6328888) > 1e-5 || math.Abs(lon+73.771385) > 1e-5 {
		t.Errorf("%s: got (%v, %v)", b, lat, lon)
	}
	if z, ok := out.Z(); !ok || z.Value() != 4 {
		t.Errorf("%s: altitude %v, %v", b, z, ok)
	}

	for _, test := range []struct {
		input    string
		expected Location
	}{
		{`[49.5, 8.25]`, FromLatLon(49.5, 8.25)},
		{`[49.5, 8.25, 100]`, Geographic3(measure.Of(49.5, measure.Degree), measure.Of(8.25, measure.Degree),
			measure.Of(100, measure.Meter))},
		{`"N40.37.58.400, W073.46.17.000"`, FromLatLon(40+37./60+58.4/3600, -(73+46./60+17./3600))},
		{`"X=1 m Y=2 m Z=3 m"`, Local3(measure.Of(1, measure.Meter), measure.Of(2, measure.Meter),
			measure.Of(3, measure.Meter))},
		{`null`, Location{}},
	} {
		var l Location
		if err := json.Unmarshal([]byte(test.input), &l); err != nil {
			t.Errorf("%s: unexpected error: %v", test.input, err)
		} else if !l.Equal(test.expected) {
			t.Errorf("%s: got %v, expected %v", test.input, l, test.expected)
		}
	}

	var l Location
	if err := json.Unmarshal([]byte(`"somewhere"`), &l); !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("invalid string: got error %v", err)
	}
	if err := json.Unmarshal([]byte(`[1]`), &l); !errors.Is(err, ErrInvalidLocation) {
		t.Errorf("short array: got error %v", err)
	}

	local := Local(measure.Of(10, measure.Meter), measure.Of(20, measure.Meter))
	if b, err := json.Marshal(local); err != nil {
		t.Errorf("local location: unexpected error: %v", err)
	} else if err := json.Unmarshal(b, &l); err != nil {
		t.Errorf("%s: unexpected error: %v", b, err)
	} else if !l.Equal(local) {
		t.Errorf("%s: got %v, expected %v", b, l, local)
	}

	if b, err := json.Marshal(Location{}); err != nil || string(b) != "null" {
		t.Errorf("zero location: got %s, %v", b, err)
	}
}

func TestLocationMsgpack(t *testing.T) {
	for _, in := range []Location{
		Geographic3(measure.Of(49.0123, measure.Degree), measure.Of(-8.5, measure.Degree),
			measure.Of(1200, measure.Foot)),
		FromLatLon(0.5, 1.25),
		Local(measure.Of(1.5, measure.Kilometer), measure.Of(-3, measure.Meter)),
		{},
	} {
		b, err := msgpack.Marshal(in)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", in, err)
		}

		var out Location
		if err := msgpack.Unmarshal(b, &out); err != nil {
			t.Errorf("%v: unexpected error: %v", in, err)
		} else if out != in {
			t.Errorf("got %v, expected %v", out, in)
		}
	}

	b, err := msgpack.Marshal([]any{1.0, "meter", 2.0, "degree", nil, nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var l Location
	if err := msgpack.Unmarshal(b, &l); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("mixed dimensions: got error %v", err)
	}
}
