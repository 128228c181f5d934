package session

import (
	"reflect"
	"testing"
)

var testBase = []string{"DT", "LAT", "LON", "SPD"}

func TestFormatNegotiationCustomPresent(t *testing.T) {
	f := NewFormatState(testBase)

	if f.Record("AT$FORM", `0,"%MV%BV%IN"`) {
		t.Fatal("one response must not resolve the negotiation")
	}
	if f.Record("AT$J1708", `0,""`) {
		t.Fatal("two responses must not resolve the negotiation")
	}
	if !f.Record("AT$FMS", "") {
		t.Fatal("third response should resolve the negotiation")
	}

	want := []string{"DT", "LAT", "LON", "SPD", "MV", "BV", "IN"}
	if got := f.EffectiveFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("effective fields = %v, want %v", got, want)
	}
}

func TestFormatNegotiationAllAbsent(t *testing.T) {
	f := NewFormatState(testBase)
	f.Record("AT$FORM", `0,""`)
	f.Record("AT$J1708", "")
	f.Record("AT$FMS", `0`)

	if !f.Resolved() {
		t.Fatal("all-absent should resolve to base")
	}
	if got := f.EffectiveFields(); !reflect.DeepEqual(got, testBase) {
		t.Errorf("effective fields = %v, want base %v", got, testBase)
	}
}

func TestFormatNegotiationDuplicateIgnored(t *testing.T) {
	f := NewFormatState(testBase)
	f.Record("AT$J1708", `0,"%RP%EL"`)
	f.Record("AT$J1708", `0,"%XX"`) // late duplicate
	f.Record("AT$FORM", "")
	f.Record("AT$FMS", "")

	want := append(append([]string{}, testBase...), "RP", "EL")
	if got := f.EffectiveFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("effective fields = %v, want %v (first response wins)", got, want)
	}
}

func TestFormatStateUnresolved(t *testing.T) {
	f := NewFormatState(testBase)
	if f.Resolved() {
		t.Fatal("fresh state must be unresolved")
	}
	if f.EffectiveFields() != nil {
		t.Fatal("unresolved state must not expose fields")
	}
	if got := len(f.Pending()); got != 3 {
		t.Fatalf("fresh state should have 3 pending queries, got %d", got)
	}

	f.Record("AT$FORM", "")
	if got := len(f.Pending()); got != 2 {
		t.Fatalf("after one response, 2 queries should remain, got %d", got)
	}
}

func TestFormatRecordUnknownToken(t *testing.T) {
	f := NewFormatState(testBase)
	if f.Record("AT$INFO", `"%MV"`) {
		t.Fatal("unrelated command response must not resolve anything")
	}
	if got := len(f.Pending()); got != 3 {
		t.Fatalf("unrelated response must not consume a flag, pending = %d", got)
	}
}

func TestParseFormatArg(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{name: "quoted list", args: `0,"%MV%BV"`, want: []string{"MV", "BV"}},
		{name: "quoted only", args: `"%SA"`, want: []string{"SA"}},
		{name: "empty quotes", args: `0,""`, want: nil},
		{name: "no quotes", args: `0,1`, want: nil},
		{name: "empty", args: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormatArg(tt.args); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormatArg(%q) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
