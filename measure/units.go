// measure/units.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package measure

import (
	gomath "math"

	vmath "github.com/missioncontrol/measure/math"
)

// Base units are meter, square meter, radian, meter per second, radian per
// second, second, factor (1), byte and volt.

var (
	Millimeter   = defineUnit[Length]("millimeter", 0.001, spaced("mm"))
	Centimeter   = defineUnit[Length]("centimeter", 0.01, spaced("cm"))
	Decimeter    = defineUnit[Length]("decimeter", 0.1, spaced("dm"))
	Meter        = defineUnit[Length]("meter", 1, spaced("m"))
	Decameter    = defineUnit[Length]("decameter", 10, spaced("dam"))
	Hectometer   = defineUnit[Length]("hectometer", 100, spaced("hm"))
	Kilometer    = defineUnit[Length]("kilometer", 1000, spaced("km"))
	Inch         = defineUnit[Length]("inch", 0.0254, spaced("″"), spaced("\""), spaced("in"), english("in"))
	Foot         = defineUnit[Length]("foot", vmath.MetersPerFoot, spaced("′"), spaced("'"), spaced("ft"), english("ft"))
	USSurveyFoot = defineUnit[Length]("us-survey-foot", 1200./3937., spaced("′"), spaced("'"), spaced("ft"), spaced("US survey foot"), english("ft"))
	ClarkesFoot  = defineUnit[Length]("clarkes-foot", 0.3047972654, spaced("′"), spaced("'"), spaced("ft"), spaced("Clarke's foot"), english("ft"))
	Yard         = defineUnit[Length]("yard", 0.9144, spaced("yd"))
	Mile         = defineUnit[Length]("mile", vmath.MetersPerStatuteMile, spaced("mi"))
	NauticalMile = defineUnit[Length]("nautical-mile", vmath.MetersPerNauticalMile, spaced("NM"), spaced("nmi"))
)

var (
	SquareMillimeter = defineUnit[Area]("square-millimeter", 0.000001, spaced("mm²"), spaced("mm^2"), spaced("sq mm"), spaced("sqmm"))
	SquareCentimeter = defineUnit[Area]("square-centimeter", 0.0001, spaced("cm²"), spaced("cm^2"), spaced("sq cm"), spaced("sqcm"))
	SquareMeter      = defineUnit[Area]("square-meter", 1, spaced("m²"), spaced("m^2"), spaced("sq m"), spaced("sqm"))
	SquareKilometer  = defineUnit[Area]("square-kilometer", 1000000, spaced("km²"), spaced("km^2"), spaced("sq km"), spaced("sqkm"))
	SquareInch       = defineUnit[Area]("square-inch", 0.00064516, spaced("in²"), spaced("in^2"), spaced("sq in"), spaced("sqin"))
	SquareFoot       = defineUnit[Area]("square-foot", 0.09290304, spaced("ft²"), spaced("ft^2"), spaced("sq ft"), spaced("sqft"))
	SquareYard       = defineUnit[Area]("square-yard", 0.83612736, spaced("yd²"), spaced("yd^2"), spaced("sq yd"), spaced("sqyd"))
	SquareMile       = defineUnit[Area]("square-mile", 2589988.110336, spaced("mi²"), spaced("mi^2"), spaced("sq mi"), spaced("sqmi"))
	Acre             = defineUnit[Area]("acre", 4046.8564224, spaced("ac"))
	Are              = defineUnit[Area]("are", 100, spaced("a"))
	Decare           = defineUnit[Area]("decare", 1000, spaced("daa"))
	Hectare          = defineUnit[Area]("hectare", 10000, spaced("ha"))
)

var (
	Microsecond = defineUnit[Time]("microsecond", 0.000001, spaced("µs"), spaced("µsec"))
	Millisecond = defineUnit[Time]("millisecond", 0.001, spaced("ms"), spaced("msec"))
	Second      = defineUnit[Time]("second", 1, spaced("s"), spaced("sec"))
	Minute      = defineUnit[Time]("minute", 60, spaced("min"))
	Hour        = defineUnit[Time]("hour", 3600, spaced("h"))
	Day         = defineUnit[Time]("day", 86400, spaced("d"))
)

var (
	Milliarcsecond = defineUnit[Angle]("milliarcsecond", gomath.Pi/648000000, spaced("mas"))
	Arcsecond      = defineUnit[Angle]("arcsecond", gomath.Pi/648000, tight("″"), tight("\""),
		spaced("as"), spaced("asec"), spaced("arcsec"), spaced("sec"), spaced("s"))
	Arcminute = defineUnit[Angle]("arcminute", gomath.Pi/10800, tight("′"), tight("'"),
		spaced("am"), spaced("amin"), spaced("arcmin"), spaced("min"))
	Degree = defineUnit[Angle]("degree", gomath.Pi/180, tight("°"), spaced("deg"))
	Radian = defineUnit[Angle]("radian", 1, spaced("rad"), spaced("r"))
)

var (
	MeterPerSecond   = defineUnit[Speed]("meter-per-second", 1, spaced("m/s"))
	FootPerSecond    = defineUnit[Speed]("foot-per-second", 0.3048, spaced("ft/s"))
	KilometerPerHour = defineUnit[Speed]("kilometer-per-hour", 1./3.6, spaced("km/h"), english("kph"))
	MilePerHour      = defineUnit[Speed]("mile-per-hour", 0.44704, spaced("mi/h"), english("mph"))
	Knot             = defineUnit[Speed]("knot", 1852./3600., spaced("kn"), spaced("kt"))
)

var (
	RadianPerSecond = defineUnit[AngularSpeed]("radian-per-second", 1, spaced("rad/s"), spaced("r/s"))
	RadianPerMinute = defineUnit[AngularSpeed]("radian-per-minute", 1./60, spaced("rad/min"), spaced("r/min"))
	RadianPerHour   = defineUnit[AngularSpeed]("radian-per-hour", 1./3600, spaced("rad/h"), spaced("r/h"))
	DegreePerSecond = defineUnit[AngularSpeed]("degree-per-second", gomath.Pi/180, tight("°/s"), spaced("deg/s"))
	DegreePerMinute = defineUnit[AngularSpeed]("degree-per-minute", gomath.Pi/180/60, tight("°/min"), spaced("deg/min"))
	DegreePerHour   = defineUnit[AngularSpeed]("degree-per-hour", gomath.Pi/180/3600, tight("°/h"), spaced("deg/h"))
)

// The binary multiples carry the conventional KB..TB symbols and the
// decimal multiples the IEC KiB..TiB symbols; stored data sizes in the
// field have always been written this way.
var (
	Byte     = defineUnit[Storage]("byte", 1, spaced("B"), spaced("byte"), spaced("bytes"))
	Kilobyte = defineUnit[Storage]("kilobyte", 1024, spaced("KB"), spaced("kilobyte"), spaced("kilobytes"))
	Megabyte = defineUnit[Storage]("megabyte", 1048576, spaced("MB"), spaced("megabyte"), spaced("megabytes"))
	Gigabyte = defineUnit[Storage]("gigabyte", 1073741824, spaced("GB"), spaced("gigabyte"), spaced("gigabytes"))
	Terabyte = defineUnit[Storage]("terabyte", 1099511627776, spaced("TB"), spaced("terabyte"), spaced("terabytes"))
	Kibibyte = defineUnit[Storage]("kibibyte", 1e3, spaced("KiB"), spaced("kibibyte"), spaced("kibibytes"))
	Mebibyte = defineUnit[Storage]("mebibyte", 1e6, spaced("MiB"), spaced("mebibyte"), spaced("mebibytes"))
	Gibibyte = defineUnit[Storage]("gibibyte", 1e9, spaced("GiB"), spaced("gibibyte"), spaced("gibibytes"))
	Tebibyte = defineUnit[Storage]("tebibyte", 1e12, spaced("TiB"), spaced("tebibyte"), spaced("tebibytes"))
)

var (
	Percent = defineUnit[Percentage]("percent", 0.01, tight("%"))
	Factor  = defineUnit[Percentage]("factor", 1, tight("x"))
)

var (
	Volt      = defineUnit[Voltage]("volt", 1, spaced("V"))
	Millivolt = defineUnit[Voltage]("millivolt", 0.001, spaced("mV"))
)
