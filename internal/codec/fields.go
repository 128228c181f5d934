package codec

import (
	"encoding/json"
	"fmt"
	"os"
)

// Kind is the closed set of storage kinds a field definition can carry.
// Composite kinds (u8, g_force, tpms) fan out into int/float values.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindU8
	KindGForce
	KindTPMS
)

var kindNames = map[Kind]string{
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "boolean",
	KindString: "string",
	KindU8:     "u8",
	KindGForce: "g_force",
	KindTPMS:   "tpms",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for kk, name := range kindNames {
		if name == s {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unknown field kind %q", s)
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// BitSubField names one bit span of a u8 field. Span is "n" for a single
// bit or "a~b" for an inclusive range, bit 0 = LSB.
type BitSubField struct {
	Span  string          `json:"span"`
	Field FieldDefinition `json:"field"`
}

// TireEquation holds the linear coefficients for TPMS temperature and
// pressure decoding.
type TireEquation struct {
	TempSlope     float64 `json:"temp_slope"`
	TempConst     float64 `json:"temp_const"`
	PressureSlope float64 `json:"pressure_slope"`
	PressureConst float64 `json:"pressure_const"`
}

// FieldDefinition maps one device format token to a named, typed output.
type FieldDefinition struct {
	Name       string            `json:"name"`
	Kind       Kind              `json:"kind"`
	Multiplier int64             `json:"multiplier,omitempty"` // KindInt, 0/1 = none
	Decimals   int               `json:"decimals,omitempty"`   // KindFloat
	Lookup     map[string]string `json:"lookup,omitempty"`     // KindString
	Bits       []BitSubField     `json:"bits,omitempty"`       // KindU8
	Equation   *TireEquation     `json:"equation,omitempty"`   // KindTPMS
}

// Catalog is the shared, read-only token -> definition table. Loaded once
// at startup, never mutated afterwards.
type Catalog struct {
	defs map[string]FieldDefinition
}

func NewCatalog(defs map[string]FieldDefinition) *Catalog {
	return &Catalog{defs: defs}
}

// Lookup returns the definition for a format token.
func (c *Catalog) Lookup(token string) (FieldDefinition, bool) {
	def, ok := c.defs[token]
	return def, ok
}

// LoadOverlay merges token definitions from a JSON file over the built-in
// table. Must be called before the catalog is shared across connections.
func (c *Catalog) LoadOverlay(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("field catalog: %w", err)
	}
	var overlay map[string]FieldDefinition
	if err := json.Unmarshal(b, &overlay); err != nil {
		return fmt.Errorf("field catalog: %w", err)
	}
	for token, def := range overlay {
		c.defs[token] = def
	}
	return nil
}

// DefaultCatalog is the built-in token table for the supported report
// fields. Tokens the device reports but the table does not know are skipped
// positionally during extraction.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[string]FieldDefinition{
		"DT":  {Name: "device_time", Kind: KindInt},
		"LAT": {Name: "latitude", Kind: KindFloat, Decimals: 6},
		"LON": {Name: "longitude", Kind: KindFloat, Decimals: 6},
		"SPD": {Name: "speed_kph", Kind: KindInt},
		"CRS": {Name: "course_deg", Kind: KindInt},
		"SA":  {Name: "satellites", Kind: KindInt},
		"MV":  {Name: "main_voltage_mv", Kind: KindInt, Multiplier: 100},
		"BV":  {Name: "backup_voltage", Kind: KindFloat, Decimals: 2},
		"GQ":  {Name: "gsm_quality", Kind: KindInt},
		"OD":  {Name: "odometer_m", Kind: KindInt},
		"RP":  {Name: "engine_rpm", Kind: KindInt},
		"FL":  {Name: "fuel_level_pct", Kind: KindInt},
		"AV1": {Name: "analog_input_1", Kind: KindFloat, Decimals: 2},
		"ST": {Name: "motion_state", Kind: KindString, Lookup: map[string]string{
			"0": "stopped",
			"1": "moving",
			"2": "idling",
		}},
		"IN": {Name: "io_status", Kind: KindU8, Bits: []BitSubField{
			{Span: "0", Field: FieldDefinition{Name: "ignition", Kind: KindBool}},
			{Span: "1", Field: FieldDefinition{Name: "input_1", Kind: KindBool}},
			{Span: "2", Field: FieldDefinition{Name: "input_2", Kind: KindBool}},
			{Span: "4~7", Field: FieldDefinition{Name: "output_bank", Kind: KindInt}},
		}},
		"XA": {Name: "g_sensor", Kind: KindGForce},
		"TD": {Name: "tire", Kind: KindTPMS, Equation: &TireEquation{
			TempSlope:     3,
			TempConst:     -424,
			PressureSlope: 0.3625,
			PressureConst: 0,
		}},
	})
}
