package gamma

import (
	"encoding/json"
	"testing"
)

func TestFlexBool(t *testing.T) {
	tests := []struct {
		in   string
		want flexBool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"TRUE"`, true},
		{`"false"`, false},
		{`"1"`, true},
		{`"0"`, false},
	}
	for _, tt := range tests {
		var got flexBool
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("flexBool(%s) = %t, want %t", tt.in, got, tt.want)
		}
	}
}

func TestMarketFlagsDecodeFromStrings(t *testing.T) {
	var m APIMarket
	if err := json.Unmarshal([]byte(`{"active":"true","closed":"false"}`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !m.Active || m.Closed {
		t.Fatalf("flags = active %t closed %t", bool(m.Active), bool(m.Closed))
	}

	var g APIMarketGroup
	if err := json.Unmarshal([]byte(`{"slug":"e","active":false,"closed":"true"}`), &g); err != nil {
		t.Fatalf("unmarshal group: %v", err)
	}
	if g.Active || !g.Closed {
		t.Fatalf("group flags = active %t closed %t", bool(g.Active), bool(g.Closed))
	}
}
