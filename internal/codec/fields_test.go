package codec

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	overlay := `{
		"EL": {"name": "engine_load_pct", "kind": "int"},
		"MV": {"name": "main_voltage_raw", "kind": "int"},
		"DR": {"name": "door_state", "kind": "string", "lookup": {"0": "closed", "1": "open"}}
	}`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	c := DefaultCatalog()
	if err := c.LoadOverlay(path); err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}

	// New token added.
	def, ok := c.Lookup("EL")
	if !ok || def.Name != "engine_load_pct" || def.Kind != KindInt {
		t.Errorf("EL = %+v, %v", def, ok)
	}

	// Existing token replaced, multiplier gone.
	def, ok = c.Lookup("MV")
	if !ok || def.Name != "main_voltage_raw" || def.Multiplier != 0 {
		t.Errorf("MV = %+v, %v", def, ok)
	}

	got := c.ExtractFields([]string{"1"}, []string{"DR"}, 0)
	if len(got) != 1 || got[0].Str != "open" {
		t.Errorf("DR decode = %+v", got)
	}
}

func TestLoadOverlayErrors(t *testing.T) {
	c := DefaultCatalog()
	if err := c.LoadOverlay("does/not/exist.json"); err == nil {
		t.Error("missing file should error")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(bad, []byte(`{"EL": {"kind": "telepathy"}}`), 0644)
	if err := c.LoadOverlay(bad); err == nil {
		t.Error("unknown kind should error")
	}
}
