package networth

import "testing"

func TestJsonObjectWriterFieldOrder(t *testing.T) {
	w := &jsonObjectWriter{}
	w.Append("b", 2).Append("a", "one")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"b":2,"a":"one"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriterOptional(t *testing.T) {
	w := &jsonObjectWriter{}
	w.Append("name", "x").Optional("empty", "").Optional("zero", 0).Optional("set", 42)
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"name":"x","set":42}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriterEmpty(t *testing.T) {
	w := &jsonObjectWriter{}
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}
