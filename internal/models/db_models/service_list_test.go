package db_models

import (
	"reflect"
	"testing"
)

func TestServiceListScanShapes(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want ServiceList
	}{
		{"json array", `["Viki Pass","Kocowa+"]`, ServiceList{"Viki Pass", "Kocowa+"}},
		{"postgres text array", `{"Viki Pass","IQIYI"}`, ServiceList{"Viki Pass", "IQIYI"}},
		{"bare single name", `WeTV`, ServiceList{"WeTV"}},
		{"plus delimited quoted", `"Viki Pass" + "WeTV"`, ServiceList{"Viki Pass", "WeTV"}},
		{"bytes input", []byte(`["DramaBox"]`), ServiceList{"DramaBox"}},
		{"nil column", nil, nil},
		{"empty string", "", nil},
		{"json with empty entries", `["", "Viki Pass"]`, ServiceList{"Viki Pass"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s ServiceList
			if err := s.Scan(c.in); err != nil {
				t.Fatalf("Scan(%v) failed: %v", c.in, err)
			}
			if !reflect.DeepEqual(s, c.want) {
				t.Errorf("Scan(%v) = %v, want %v", c.in, s, c.want)
			}
		})
	}
}

// The legacy splitter treats every "+" as a delimiter, including the one
// inside a quoted "Kocowa+". That row shape has always parsed this way and
// changing it would reshuffle stored subscriptions.
func TestServiceListScanPlusInsideQuotedName(t *testing.T) {
	var s ServiceList
	if err := s.Scan(`"Kocowa+" + "WeTV"`); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	want := ServiceList{"Kocowa", "WeTV"}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("Scan = %v, want %v", s, want)
	}
}

func TestServiceListValue(t *testing.T) {
	v, err := ServiceList{"Viki Pass"}.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != `["Viki Pass"]` {
		t.Errorf("Value = %v, want JSON array", v)
	}

	v, err = ServiceList(nil).Value()
	if err != nil {
		t.Fatalf("Value(nil) failed: %v", err)
	}
	if v != "[]" {
		t.Errorf("Value(nil) = %v, want empty JSON array", v)
	}
}

func TestServiceListScanUnsupportedType(t *testing.T) {
	var s ServiceList
	if err := s.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}
