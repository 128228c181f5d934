package session

import "strings"

// Customization is one of the three device report customizations. At most
// one of them is ever present for a given device; when none is, the report
// carries the base fields only.
type Customization int

const (
	CustomizationCustom Customization = iota
	CustomizationJ1708
	CustomizationJ1939
)

var customizations = [...]Customization{
	CustomizationCustom,
	CustomizationJ1708,
	CustomizationJ1939,
}

// queryCommand is the ASCII command whose response populates the
// customization's flag. Queries go out as "<cmd>=?" + CRLF and the device
// echoes the bare command token back in its response line.
var queryCommand = map[Customization]string{
	CustomizationCustom: "AT$FORM",
	CustomizationJ1708:  "AT$J1708",
	CustomizationJ1939:  "AT$FMS",
}

var commandCustomization = map[string]Customization{
	"AT$FORM":  CustomizationCustom,
	"AT$J1708": CustomizationJ1708,
	"AT$FMS":   CustomizationJ1939,
}

// FormatStatus is the explicit tri-state of one customization flag.
type FormatStatus int

const (
	FormatUnknown FormatStatus = iota
	FormatPresent
	FormatAbsent
)

// FormatState tracks report-format negotiation for one connection. Each of
// the three flags is populated at most once by its command response; once
// all three have left FormatUnknown the effective field sequence is fixed
// for the connection's lifetime.
type FormatState struct {
	base      []string
	status    map[Customization]FormatStatus
	fields    map[Customization][]string
	effective []string
	resolved  bool
}

func NewFormatState(baseFields []string) *FormatState {
	return &FormatState{
		base:   baseFields,
		status: make(map[Customization]FormatStatus, len(customizations)),
		fields: make(map[Customization][]string, len(customizations)),
	}
}

func (f *FormatState) Resolved() bool { return f.resolved }

// EffectiveFields is the base sequence plus the present customization's
// tokens. Empty until resolution.
func (f *FormatState) EffectiveFields() []string {
	if !f.resolved {
		return nil
	}
	return f.effective
}

// Pending returns the query commands still waiting for a response.
func (f *FormatState) Pending() []string {
	var cmds []string
	for _, c := range customizations {
		if f.status[c] == FormatUnknown {
			cmds = append(cmds, queryCommand[c])
		}
	}
	return cmds
}

// Record consumes one command-response line "<token>=<args>". A non-empty
// quoted format argument marks the customization present with its %-split
// token list; anything else marks it absent. Late duplicates are ignored.
// Returns true when this response completed the negotiation.
func (f *FormatState) Record(token, args string) bool {
	c, ok := commandCustomization[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return false
	}
	if f.status[c] != FormatUnknown {
		return false
	}

	if tokens := parseFormatArg(args); len(tokens) > 0 {
		f.status[c] = FormatPresent
		f.fields[c] = tokens
	} else {
		f.status[c] = FormatAbsent
	}
	return f.evaluate()
}

// evaluate fixes the effective field sequence once all three flags have
// resolved. Priority order only matters defensively: the device guarantees
// at most one present customization.
func (f *FormatState) evaluate() bool {
	if f.resolved {
		return false
	}
	for _, c := range customizations {
		if f.status[c] == FormatUnknown {
			return false
		}
	}
	f.effective = append([]string{}, f.base...)
	for _, c := range customizations {
		if f.status[c] == FormatPresent {
			f.effective = append(f.effective, f.fields[c]...)
			break
		}
	}
	f.resolved = true
	return true
}

// parseFormatArg extracts the quoted format string from the response's
// comma-separated arguments and splits it on '%', dropping the leading
// empty element. Example: `0,"%MV%BV"` -> [MV BV].
func parseFormatArg(args string) []string {
	quoted := ""
	for _, arg := range strings.Split(args, ",") {
		arg = strings.TrimSpace(arg)
		if len(arg) >= 2 && strings.HasPrefix(arg, `"`) && strings.HasSuffix(arg, `"`) {
			quoted = arg[1 : len(arg)-1]
			break
		}
	}
	if quoted == "" {
		return nil
	}
	var tokens []string
	for _, tok := range strings.Split(quoted, "%") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
