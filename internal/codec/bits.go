package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// BinaryString renders v as a fixed-width binary string, zero padded on the
// left. The rightmost character is bit 0. Returns false when v does not fit
// in width bits.
func BinaryString(v uint64, width int) (string, bool) {
	if width <= 0 || width > 64 {
		return "", false
	}
	s := strconv.FormatUint(v, 2)
	if len(s) > width {
		return "", false
	}
	return strings.Repeat("0", width-len(s)) + s, true
}

// SliceBits extracts the span named from a string produced by
// BinaryString. span is a single bit index "n" or an inclusive range "a~b"
// with a < b; bit 0 is the least significant bit.
func SliceBits(bin string, span string) (string, bool) {
	lo, hi, err := parseBitSpan(span)
	if err != nil {
		return "", false
	}
	width := len(bin)
	if lo < 0 || hi >= width {
		return "", false
	}
	return bin[width-1-hi : width-lo], true
}

func parseBitSpan(span string) (lo, hi int, err error) {
	if a, b, found := strings.Cut(span, "~"); found {
		lo, err = strconv.Atoi(a)
		if err != nil {
			return 0, 0, err
		}
		hi, err = strconv.Atoi(b)
		if err != nil {
			return 0, 0, err
		}
		if lo >= hi {
			return 0, 0, fmt.Errorf("bad bit range %q", span)
		}
		return lo, hi, nil
	}
	lo, err = strconv.Atoi(span)
	return lo, lo, err
}

// TwosComplement reinterprets the low `bits` bits of v as a signed integer.
func TwosComplement(v uint64, bits int) int64 {
	if bits <= 0 || bits >= 64 {
		return int64(v)
	}
	if v&(1<<uint(bits-1)) != 0 {
		return int64(v) - (int64(1) << uint(bits))
	}
	return int64(v)
}

// HexToSigned parses s as unsigned hex and reinterprets it as a `bits`-wide
// two's-complement value.
func HexToSigned(s string, bits int) (int64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, err
	}
	return TwosComplement(v, bits), nil
}

// ParseFloatDecimal reads a decimal integer string as a fixed-point value
// with `decimals` digits after the point, left-padding with zeros when the
// string is shorter than `decimals`: ("6162", 2) -> 61.62, ("5", 2) -> 0.05.
func ParseFloatDecimal(s string, decimals int) (float64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return 0, err
	}
	if decimals > 0 {
		if len(s) < decimals {
			s = strings.Repeat("0", decimals-len(s)) + s
		}
		s = s[:len(s)-decimals] + "." + s[len(s)-decimals:]
		if strings.HasPrefix(s, ".") {
			s = "0" + s
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		f = -f
	}
	return f, nil
}
