package ordering

import (
	"context"
	"errors"
	"testing"
)

func TestAppendOption(t *testing.T) {
	tests := []struct {
		name    string
		current string
		text    string
		want    string
	}{
		{"empty current", "", "extra shot", "extra shot"},
		{"append", "less ice", "extra shot", "less ice, extra shot"},
		{"already present", "less ice, Extra Shot", "extra shot", "less ice, Extra Shot"},
		{"blank text", "less ice", "  ", "less ice"},
		{"trims", "  less ice ", " oat milk ", "less ice, oat milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendOption(tt.current, tt.text); got != tt.want {
				t.Errorf("AppendOption(%q, %q) = %q, want %q", tt.current, tt.text, got, tt.want)
			}
		})
	}
}

func TestFindPreset(t *testing.T) {
	presets := []OptionPreset{{ID: "p1", Name: "Extra Shot", Category: "Shot"}, {ID: "p2", Name: "less ice"}}

	if p, ok := FindPreset(presets, " extra shot "); !ok || p.ID != "p1" {
		t.Fatalf("expected p1, got %+v (ok=%v)", p, ok)
	}
	if _, ok := FindPreset(presets, "vanilla"); ok {
		t.Fatal("unexpected match")
	}
}

func TestEngineApplyPreset(t *testing.T) {
	backend := NewMockBackend(testToday)
	seedCustom(backend)
	backend.presets = []OptionPreset{{ID: "p1", Name: "extra shot", Category: "Shot"}, {ID: "p2", Name: "less ice"}}
	e := newTestEngine(t, backend)
	ctx := context.Background()

	if err := e.Open(ctx, "d1"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SelectMember("A"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SelectCategory("Coffee"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.SelectItem("m1"); err != nil {
		t.Fatal(err)
	}

	e.SetPersonalOption("less ice")
	d, err := e.ApplyPreset(ctx, "Extra Shot")
	if err != nil {
		t.Fatal(err)
	}
	if d.PersonalOption() != "less ice, extra shot" {
		t.Fatalf("unexpected personal option %q", d.PersonalOption())
	}

	if _, err := e.ApplyPreset(ctx, "vanilla"); err == nil {
		t.Fatal("expected an error for an unknown preset")
	} else {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	}

	out, err := e.Submit(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Order.Option == nil || *out.Order.Option != "less ice, extra shot" {
		t.Fatalf("preset not carried into the order: %+v", out.Order)
	}
}
