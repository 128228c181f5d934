package codec

import (
	"strconv"
	"testing"
)

func TestParseFloatDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		decimals int
		want     float64
		wantErr  bool
	}{
		{name: "point inserted", input: "6162", decimals: 2, want: 61.62},
		{name: "left pad", input: "5", decimals: 2, want: 0.05},
		{name: "exact width", input: "62", decimals: 2, want: 0.62},
		{name: "zero decimals", input: "42", decimals: 0, want: 42},
		{name: "negative", input: "-314", decimals: 2, want: -3.14},
		{name: "not a number", input: "abc", decimals: 2, wantErr: true},
		{name: "empty", input: "", decimals: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloatDecimal(tt.input, tt.decimals)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFloatDecimal(%q, %d) error = %v, wantErr %v", tt.input, tt.decimals, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFloatDecimal(%q, %d) = %v, want %v", tt.input, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestTwosComplement(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		bits int
		want int64
	}{
		{name: "positive 8-bit", v: 0x7F, bits: 8, want: 127},
		{name: "negative 8-bit", v: 0xFF, bits: 8, want: -1},
		{name: "min 8-bit", v: 0x80, bits: 8, want: -128},
		{name: "16-bit positive at 32-bit width", v: 0xFFFF, bits: 32, want: 65535},
		{name: "negative 32-bit", v: 0xFFFFFFFE, bits: 32, want: -2},
		{name: "full width", v: 0xFFFFFFFFFFFFFFFF, bits: 64, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TwosComplement(tt.v, tt.bits); got != tt.want {
				t.Errorf("TwosComplement(%#x, %d) = %d, want %d", tt.v, tt.bits, got, tt.want)
			}
		})
	}
}

func TestHexToSigned(t *testing.T) {
	got, err := HexToSigned("FFFE", 16)
	if err != nil {
		t.Fatalf("HexToSigned: %v", err)
	}
	if got != -2 {
		t.Errorf("HexToSigned(FFFE, 16) = %d, want -2", got)
	}

	if _, err := HexToSigned("zz", 16); err == nil {
		t.Error("HexToSigned(zz) expected error")
	}
}

func TestBinaryStringWidth(t *testing.T) {
	bin, ok := BinaryString(5, 8)
	if !ok || bin != "00000101" {
		t.Errorf("BinaryString(5, 8) = %q, %v", bin, ok)
	}
	if _, ok := BinaryString(256, 8); ok {
		t.Error("BinaryString(256, 8) should reject an out-of-width value")
	}
}

func TestSliceBits(t *testing.T) {
	tests := []struct {
		name string
		bin  string
		spec string
		want string
		ok   bool
	}{
		{name: "single low bit", bin: "00000101", spec: "0", want: "1", ok: true},
		{name: "single high bit", bin: "10000000", spec: "7", want: "1", ok: true},
		{name: "range", bin: "11110000", spec: "4~7", want: "1111", ok: true},
		{name: "range crossing", bin: "00011000", spec: "3~4", want: "11", ok: true},
		{name: "out of width", bin: "00000001", spec: "8", ok: false},
		{name: "inverted range", bin: "00000001", spec: "5~2", ok: false},
		{name: "garbage", bin: "00000001", spec: "x", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SliceBits(tt.bin, tt.spec)
			if ok != tt.ok {
				t.Fatalf("SliceBits(%q, %q) ok = %v, want %v", tt.bin, tt.spec, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("SliceBits(%q, %q) = %q, want %q", tt.bin, tt.spec, got, tt.want)
			}
		})
	}
}

// Round trip: slicing bits a~b out of the rendered string must equal the
// direct shift-and-mask extraction for every value and sub-range of an
// 8-bit word.
func TestSliceBitsRoundTrip(t *testing.T) {
	const width = 8
	for v := uint64(0); v < 1<<width; v++ {
		bin, ok := BinaryString(v, width)
		if !ok {
			t.Fatalf("BinaryString(%d, %d) rejected in-range value", v, width)
		}
		for a := 0; a < width; a++ {
			for b := a + 1; b < width; b++ {
				spec := strconv.Itoa(a) + "~" + strconv.Itoa(b)
				slice, ok := SliceBits(bin, spec)
				if !ok {
					t.Fatalf("SliceBits(%q, %q) rejected in-range span", bin, spec)
				}
				got, err := strconv.ParseUint(slice, 2, 64)
				if err != nil {
					t.Fatalf("parse slice %q: %v", slice, err)
				}
				want := (v >> uint(a)) & ((1 << uint(b-a+1)) - 1)
				if got != want {
					t.Fatalf("v=%d span=%s: got %d, want %d", v, spec, got, want)
				}
			}
		}
	}
}
