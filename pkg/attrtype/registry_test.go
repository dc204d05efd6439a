package attrtype_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-feedmeta/pkg/attrtype"
)

func TestDefaultResolvesCanonicalTypes(t *testing.T) {
	reg := attrtype.Default()

	for _, name := range []string{"text", "number", "url", "dateTimeRange"} {
		typ, err := reg.ForName(name)
		if err != nil {
			t.Fatalf("ForName(%q): %v", name, err)
		}
		if typ.Name() != name {
			t.Fatalf("expected token %q, got %q", name, typ.Name())
		}
	}
}

func TestForNameUnknownToken(t *testing.T) {
	_, err := attrtype.Default().ForName("holographic")
	if err == nil {
		t.Fatalf("expected unknown type error")
	}
	if !errors.Is(err, attrtype.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := attrtype.NewRegistry()
	if err := reg.Register(attrtype.Text); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := reg.Register(attrtype.Text); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegisterRejectsZeroType(t *testing.T) {
	if err := attrtype.NewRegistry().Register(attrtype.Type{}); err == nil {
		t.Fatalf("expected zero type registration to fail")
	}
}

func TestNamesPreserveRegistrationOrder(t *testing.T) {
	reg := attrtype.NewRegistry()
	reg.MustRegister(attrtype.URL)
	reg.MustRegister(attrtype.New("custom"))
	reg.MustRegister(attrtype.Text)

	got := reg.Names()
	want := []string{"url", "custom", "text"}
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestZeroTypeSemantics(t *testing.T) {
	var zero attrtype.Type
	if !zero.IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	if zero.Equal(attrtype.Text) {
		t.Fatalf("zero value should not equal a canonical type")
	}
	if attrtype.Text != attrtype.New("text") {
		t.Fatalf("types with the same token should compare equal")
	}
}
