package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodedValue is one named, typed output of a field decode. A single input
// token may expand into zero, one or many of these.
type DecodedValue struct {
	Name  string
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// Value returns the payload matching the value's kind.
func (v DecodedValue) Value() any {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindString:
		return v.Str
	default:
		return v.Int
	}
}

func (v DecodedValue) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"name":%q,"type":%q,"value":%s}`,
		v.Name, v.Kind.String(), jsonValue(v))), nil
}

func jsonValue(v DecodedValue) string {
	switch v.Kind {
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return strconv.Quote(v.Str)
	default:
		return strconv.FormatInt(v.Int, 10)
	}
}

func intValue(name string, n int64) DecodedValue {
	return DecodedValue{Name: name, Kind: KindInt, Int: n}
}

func floatValue(name string, f float64) DecodedValue {
	return DecodedValue{Name: name, Kind: KindFloat, Float: f}
}

// ExtractFields decodes each raw token at position i >= offset against the
// definition of formatNames[i]. Unknown tokens are skipped positionally.
// Returns nil when nothing across the whole input decoded.
func (c *Catalog) ExtractFields(rawTokens, formatNames []string, offset int) []DecodedValue {
	var out []DecodedValue
	for i := offset; i < len(formatNames) && i < len(rawTokens); i++ {
		def, ok := c.defs[formatNames[i]]
		if !ok {
			continue
		}
		out = append(out, decodeField(def, strings.TrimSpace(rawTokens[i]))...)
	}
	return out
}

// decodeField applies one definition to one raw token. A failed parse or an
// unmet precondition yields nothing; it never aborts the rest of the line.
func decodeField(def FieldDefinition, raw string) []DecodedValue {
	if raw == "" {
		return nil
	}
	switch def.Kind {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil
		}
		if def.Multiplier > 1 {
			n *= def.Multiplier
		}
		return []DecodedValue{intValue(def.Name, n)}

	case KindFloat:
		f, err := ParseFloatDecimal(raw, def.Decimals)
		if err != nil {
			return nil
		}
		return []DecodedValue{floatValue(def.Name, f)}

	case KindBool:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil
		}
		return []DecodedValue{{Name: def.Name, Kind: KindBool, Bool: n == 1}}

	case KindString:
		label, ok := def.Lookup[raw]
		if !ok {
			return nil
		}
		return []DecodedValue{{Name: def.Name, Kind: KindString, Str: label}}

	case KindU8:
		return decodeBitTable(def, raw)

	case KindGForce:
		return decodeGForce(def.Name, raw)

	case KindTPMS:
		return decodeTires(def, raw)
	}
	return nil
}

// decodeBitTable fans a 0-255 value out into its configured bit spans. Each
// span decodes with its own definition; nested u8 is not allowed.
func decodeBitTable(def FieldDefinition, raw string) []DecodedValue {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n > 0xFF {
		return nil
	}
	bin, ok := BinaryString(n, 8)
	if !ok {
		return nil
	}
	var out []DecodedValue
	for _, sub := range def.Bits {
		if sub.Field.Kind == KindU8 {
			continue
		}
		slice, ok := SliceBits(bin, sub.Span)
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(slice, 2, 64)
		if err != nil {
			continue
		}
		out = append(out, decodeField(sub.Field, strconv.FormatUint(v, 10))...)
	}
	return out
}

// decodeGForce splits a 12-hex-char accelerometer sample into x/y/z axes,
// each reinterpreted as a 32-bit two's-complement value. Axes that fail to
// parse are omitted.
func decodeGForce(name, raw string) []DecodedValue {
	if len(raw) < 12 {
		return nil
	}
	var out []DecodedValue
	for i, axis := range []string{"_x", "_y", "_z"} {
		v, err := HexToSigned(raw[i*4:i*4+4], 32)
		if err != nil {
			continue
		}
		out = append(out, intValue(name+axis, v))
	}
	return out
}

// decodeTires splits a TPMS payload into 8-hex-char tire groups. Per group,
// chars 5-6 carry raw temperature and chars 7-8 raw pressure, both run
// through their linear equations and clamped at zero. Tires are 1-indexed
// in packet order.
func decodeTires(def FieldDefinition, raw string) []DecodedValue {
	eq := def.Equation
	if eq == nil || len(raw) == 0 || len(raw)%8 != 0 {
		return nil
	}
	var out []DecodedValue
	for i := 0; i*8 < len(raw); i++ {
		group := raw[i*8 : i*8+8]
		tv, err1 := strconv.ParseUint(group[4:6], 16, 16)
		pv, err2 := strconv.ParseUint(group[6:8], 16, 16)
		if err1 != nil || err2 != nil {
			continue
		}
		temp := eq.TempSlope*float64(tv) + eq.TempConst
		if temp < 0 {
			temp = 0
		}
		pressure := eq.PressureSlope*float64(pv) + eq.PressureConst
		if pressure < 0 {
			pressure = 0
		}
		out = append(out,
			intValue(fmt.Sprintf("tire_temp_%d", i+1), int64(temp)),
			floatValue(fmt.Sprintf("tire_pressure_%d", i+1), pressure),
		)
	}
	return out
}
