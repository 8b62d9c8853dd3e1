package colorspace

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewReport(t *testing.T) {
	c := RGB{R: 255, G: 128, B: 64}
	got := NewReport(c)

	want := Report{
		Hex:   "#FF8040",
		RGB:   c,
		CMYK:  ToCMYK(c),
		HSV:   ToHSV(c),
		HSL:   ToHSL(c),
		OKLab: ToOKLab(c),
		OKLCh: ToOKLCh(c),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewReport mismatch (-want +got):\n%s", diff)
	}

	// Same input, bit-identical output
	if diff := cmp.Diff(got, NewReport(c)); diff != "" {
		t.Errorf("NewReport not deterministic:\n%s", diff)
	}
}

func TestReport_White(t *testing.T) {
	r := NewReport(RGB{255, 255, 255})

	if r.CMYK != (CMYK{}) {
		t.Errorf("CMYK = %+v, want all zero", r.CMYK)
	}
	if r.HSV.H != 0 || r.HSV.S != 0 || r.HSV.V != 1 {
		t.Errorf("HSV = %+v, want (0,0,1)", r.HSV)
	}
	if !approx(r.OKLab.L, 1) || !approx(r.OKLab.A, 0) || !approx(r.OKLab.B, 0) {
		t.Errorf("OKLab = %+v, want (1,0,0)", r.OKLab)
	}
}

func TestReport_Black(t *testing.T) {
	r := NewReport(RGB{})

	if r.CMYK != (CMYK{K: 1}) {
		t.Errorf("CMYK = %+v, want (0,0,0,1)", r.CMYK)
	}
	if !approx(r.OKLab.L, 0) || !approx(r.OKLab.A, 0) || !approx(r.OKLab.B, 0) {
		t.Errorf("OKLab = %+v, want (0,0,0)", r.OKLab)
	}
	if r.OKLCh.C != 0 {
		t.Errorf("OKLCh.C = %v, want 0", r.OKLCh.C)
	}
}

func TestReport_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(NewReport(RGB{1, 2, 3}))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var doc map[string]map[string]any
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	delete(top, "hex")
	raw, _ := json.Marshal(top)
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("nested objects expected: %v", err)
	}

	want := map[string][]string{
		"rgb":   {"r", "g", "b"},
		"cmyk":  {"c", "m", "y", "k"},
		"hsv":   {"h", "s", "v"},
		"hsl":   {"h", "s", "l"},
		"oklab": {"l", "a", "b"},
		"oklch": {"l", "c", "h"},
	}
	if len(doc) != len(want) {
		t.Errorf("got %d models, want %d", len(doc), len(want))
	}
	for model, fields := range want {
		obj, ok := doc[model]
		if !ok {
			t.Errorf("missing %q", model)
			continue
		}
		if len(obj) != len(fields) {
			t.Errorf("%s has %d fields, want %d", model, len(obj), len(fields))
		}
		for _, f := range fields {
			if _, ok := obj[f]; !ok {
				t.Errorf("%s missing field %q", model, f)
			}
		}
	}
}

func TestDescribe(t *testing.T) {
	r, err := Describe("#00FF00")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if r.RGB != (RGB{0, 255, 0}) {
		t.Errorf("RGB = %+v, want (0,255,0)", r.RGB)
	}

	if _, err := Describe(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("Describe(\"\") error = %v, want %v", err, ErrEmpty)
	}
}
