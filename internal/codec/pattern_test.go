package codec

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	return DefaultCatalog()
}

func TestExtractFieldsBasicKinds(t *testing.T) {
	c := testCatalog()

	raw := []string{"120", "6162", "1", "1", "x"}
	names := []string{"SPD", "BV", "ST", "IN", "??"}

	got := c.ExtractFields(raw, names, 0)

	want := []DecodedValue{
		{Name: "speed_kph", Kind: KindInt, Int: 120},
		{Name: "backup_voltage", Kind: KindFloat, Float: 61.62},
		{Name: "motion_state", Kind: KindString, Str: "moving"},
		{Name: "ignition", Kind: KindBool, Bool: true},
		{Name: "input_1", Kind: KindBool, Bool: false},
		{Name: "input_2", Kind: KindBool, Bool: false},
		{Name: "output_bank", Kind: KindInt, Int: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractFields = %+v, want %+v", got, want)
	}
}

func TestExtractFieldsIdempotent(t *testing.T) {
	c := testCatalog()
	raw := []string{"20260823", "19433000", "-99133000", "80", "7"}
	names := []string{"DT", "LAT", "LON", "SPD", "SA"}

	first := c.ExtractFields(raw, names, 0)
	second := c.ExtractFields(raw, names, 0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %+v vs %+v", first, second)
	}
	for _, v := range first {
		if v.Name == "??" {
			t.Errorf("unknown token leaked into output: %+v", v)
		}
	}
}

func TestExtractFieldsOffsetAndEmpty(t *testing.T) {
	c := testCatalog()

	got := c.ExtractFields([]string{"999", "120"}, []string{"SPD", "SPD"}, 1)
	if len(got) != 1 || got[0].Int != 120 {
		t.Errorf("offset extraction = %+v, want single speed 120", got)
	}

	if got := c.ExtractFields([]string{"abc"}, []string{"SPD"}, 0); got != nil {
		t.Errorf("nothing decodable should yield nil, got %+v", got)
	}
	if got := c.ExtractFields([]string{"42"}, []string{"??"}, 0); got != nil {
		t.Errorf("unknown token should yield nil, got %+v", got)
	}
}

func TestIntMultiplier(t *testing.T) {
	c := testCatalog()
	got := c.ExtractFields([]string{"123"}, []string{"MV"}, 0)
	if len(got) != 1 || got[0].Int != 12300 {
		t.Errorf("MV multiplier decode = %+v, want 12300", got)
	}
}

func TestStringLookupMiss(t *testing.T) {
	c := testCatalog()
	if got := c.ExtractFields([]string{"9"}, []string{"ST"}, 0); got != nil {
		t.Errorf("lookup miss should drop the value, got %+v", got)
	}
}

func TestBitTableFanOut(t *testing.T) {
	c := testCatalog()

	// 0b10110101: ignition=1, input_1=0, input_2=1, bits 4..7 = 0b1011.
	got := c.ExtractFields([]string{"181"}, []string{"IN"}, 0)

	want := []DecodedValue{
		{Name: "ignition", Kind: KindBool, Bool: true},
		{Name: "input_1", Kind: KindBool, Bool: false},
		{Name: "input_2", Kind: KindBool, Bool: true},
		{Name: "output_bank", Kind: KindInt, Int: 11},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bit table decode = %+v, want %+v", got, want)
	}

	if got := c.ExtractFields([]string{"256"}, []string{"IN"}, 0); got != nil {
		t.Errorf("out-of-range u8 should yield nil, got %+v", got)
	}
}

func TestGForceDecode(t *testing.T) {
	c := testCatalog()

	got := c.ExtractFields([]string{"FFFE00100020"}, []string{"XA"}, 0)
	want := []DecodedValue{
		{Name: "g_sensor_x", Kind: KindInt, Int: 0xFFFE}, // 32-bit width keeps 4 hex chars positive
		{Name: "g_sensor_y", Kind: KindInt, Int: 16},
		{Name: "g_sensor_z", Kind: KindInt, Int: 32},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("g-force decode = %+v, want %+v", got, want)
	}

	if got := c.ExtractFields([]string{"FFFE0010"}, []string{"XA"}, 0); got != nil {
		t.Errorf("short g-force input should yield nil, got %+v", got)
	}

	// A bad axis is omitted, the rest still decode.
	got = c.ExtractFields([]string{"ZZZZ00100020"}, []string{"XA"}, 0)
	if len(got) != 2 || got[0].Name != "g_sensor_y" {
		t.Errorf("bad axis should be omitted, got %+v", got)
	}
}

func TestTPMSDecode(t *testing.T) {
	c := testCatalog()

	got := c.ExtractFields([]string{"D0DC9911"}, []string{"TD"}, 0)
	want := []DecodedValue{
		{Name: "tire_temp_1", Kind: KindInt, Int: 35},
		{Name: "tire_pressure_1", Kind: KindFloat, Float: 6.1625},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tpms decode = %+v, want %+v", got, want)
	}

	if got := c.ExtractFields([]string{"D0DC991"}, []string{"TD"}, 0); got != nil {
		t.Errorf("length not multiple of 8 should yield nil, got %+v", got)
	}

	noEq := NewCatalog(map[string]FieldDefinition{
		"TD": {Name: "tire", Kind: KindTPMS},
	})
	if got := noEq.ExtractFields([]string{"D0DC9911"}, []string{"TD"}, 0); got != nil {
		t.Errorf("missing equation should yield nil, got %+v", got)
	}

	// Two tires fan out in packet order.
	got = c.ExtractFields([]string{"D0DC9911D0DC9A12"}, []string{"TD"}, 0)
	if len(got) != 4 || got[2].Name != "tire_temp_2" || got[3].Name != "tire_pressure_2" {
		t.Errorf("two-tire decode = %+v", got)
	}
}

func TestDecodedValueJSON(t *testing.T) {
	v := DecodedValue{Name: "backup_voltage", Kind: KindFloat, Float: 0.05}
	b, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"name":"backup_voltage","type":"float","value":0.05}` {
		t.Errorf("json = %s", b)
	}
}
