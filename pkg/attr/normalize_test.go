package attr

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"
)

type toStrable struct{}

func (toStrable) AttributeText() string { return "foo" }

func entriesString(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		attr     string
		value    Value
		expected string
	}{
		{
			name:     "absent",
			attr:     "class",
			value:    Absent{},
			expected: "",
		},
		{
			name:     "nil value",
			attr:     "class",
			value:    nil,
			expected: "",
		},
		{
			name:     "present",
			attr:     "disabled",
			value:    Present{},
			expected: "disabled",
		},
		{
			name:     "string",
			attr:     "type",
			value:    String("range"),
			expected: `type="range"`,
		},
		{
			name:     "symbol value keeps underscores",
			attr:     "name",
			value:    Symbol("first_name"),
			expected: `name="first_name"`,
		},
		{
			name:     "zero",
			attr:     "min",
			value:    Int(0),
			expected: `min="0"`,
		},
		{
			name:     "negative int",
			attr:     "tabindex",
			value:    Int(-1),
			expected: `tabindex="-1"`,
		},
		{
			name:     "uint",
			attr:     "max",
			value:    Uint(18446744073709551615),
			expected: `max="18446744073709551615"`,
		},
		{
			name:     "float fraction",
			attr:     "step",
			value:    Float(0.5),
			expected: `step="0.5"`,
		},
		{
			name:     "integral float",
			attr:     "max",
			value:    Float(10),
			expected: `max="10"`,
		},
		{
			name:     "large float uses exponent",
			attr:     "max",
			value:    Float(1e21),
			expected: `max="1e+21"`,
		},
		{
			name:     "tiny float uses exponent",
			attr:     "step",
			value:    Float(0.0000001),
			expected: `step="1e-07"`,
		},
		{
			name:     "coercible",
			attr:     "class",
			value:    Coerce(toStrable{}),
			expected: `class="foo"`,
		},
		{
			name:     "list",
			attr:     "class",
			value:    List{String("bg-red-500"), String("rounded")},
			expected: `class="bg-red-500 rounded"`,
		},
		{
			name:     "symbol list",
			attr:     "class",
			value:    List{Symbol("bg-red-500"), Symbol("rounded")},
			expected: `class="bg-red-500 rounded"`,
		},
		{
			name:     "mixed list",
			attr:     "class",
			value:    List{String("bg-red-500"), Symbol("rounded")},
			expected: `class="bg-red-500 rounded"`,
		},
		{
			name:     "list skips absent",
			attr:     "class",
			value:    List{String("btn"), Absent{}, nil, String("active")},
			expected: `class="btn active"`,
		},
		{
			name:     "list of numbers and coercibles",
			attr:     "data-x",
			value:    List{Int(1), Float(2.5), Coerce(toStrable{})},
			expected: `data-x="1 2.5 foo"`,
		},
		{
			name:     "empty list",
			attr:     "class",
			value:    List{},
			expected: `class=""`,
		},
		{
			name:     "set sorted and unique",
			attr:     "class",
			value:    Set{String("rounded"), String("bg-red-500"), String("rounded")},
			expected: `class="bg-red-500 rounded"`,
		},
		{
			name: "nested symbol map",
			attr: "data",
			value: Map{
				SymField("name", Map{SymField("first_name", String("Joel"))}),
			},
			expected: `data-name-first-name="Joel"`,
		},
		{
			name:     "string key kept verbatim",
			attr:     "data",
			value:    Map{StrField("name_first_name", String("Joel"))},
			expected: `data-name_first_name="Joel"`,
		},
		{
			name: "map keeps insertion order depth first",
			attr: "data",
			value: Map{
				SymField("b", Map{
					SymField("y", Int(1)),
					SymField("x", Int(2)),
				}),
				SymField("a", Present{}),
				SymField("c", Absent{}),
				SymField("d", List{String("p"), String("q")}),
			},
			expected: `data-b-y="1" data-b-x="2" data-a data-d="p q"`,
		},
		{
			name:     "empty map",
			attr:     "data",
			value:    Map{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Normalize(tt.attr, tt.value)
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if got := entriesString(entries); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.attr, got, tt.expected)
			}
		})
	}
}

func TestNormalizePresenceOnly(t *testing.T) {
	entries, err := Normalize("checked", Present{})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].HasValue() {
		t.Error("presence-only entry should have no value")
	}
	if _, ok := entries[0].Value.Value(); ok {
		t.Error("Emitted.Value() ok should be false")
	}
	if entries[0].Value != NoValue {
		t.Error("entry value should equal NoValue")
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		attr    string
		value   Value
		wantErr error
	}{
		{"empty name", "", String("x"), ErrEmptyName},
		{"nested list", "class", List{List{String("a")}}, ErrInvalidShape},
		{"map in list", "class", List{Map{}}, ErrInvalidShape},
		{"set in set", "class", Set{Set{}}, ErrInvalidShape},
		{"present in list", "class", List{Present{}}, ErrInvalidShape},
		{"nil coercible", "class", Coercible{}, ErrNotCoercible},
		{"nan", "step", Float(math.NaN()), ErrInvalidShape},
		{"empty map key", "data", Map{StrField("", String("x"))}, ErrEmptyName},
		{"duplicate key", "data", Map{SymField("a", Int(1)), SymField("a", Int(2))}, ErrInvalidShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Normalize(tt.attr, tt.value)
			if err == nil {
				t.Fatalf("expected error, got entries %v", entries)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeDuplicateKeyLargeMap(t *testing.T) {
	m := Map{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		m = append(m, SymField(k, Int(1)))
	}
	m = append(m, SymField("c", Int(2)))

	_, err := Normalize("data", m)
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("error = %v, want ErrInvalidShape", err)
	}

	// Same name but different key style is not a duplicate.
	ok := Map{SymField("a", Int(1)), StrField("a", Int(2))}
	if _, err := Normalize("data", ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizeShapeErrorDetails(t *testing.T) {
	_, err := Normalize("class", List{String("a"), Map{}})

	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("error = %T, want *ShapeError", err)
	}
	if shapeErr.Name != "class" {
		t.Errorf("Name = %q, want %q", shapeErr.Name, "class")
	}
	if shapeErr.Kind != KindMap {
		t.Errorf("Kind = %v, want %v", shapeErr.Kind, KindMap)
	}
	if !strings.Contains(err.Error(), "Map is not allowed inside a collection") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNormalizeMaxDepth(t *testing.T) {
	deep := func(levels int) Value {
		var v Value = String("leaf")
		for i := 0; i < levels; i++ {
			v = Map{SymField("k", v)}
		}
		return v
	}

	n := New(WithMaxDepth(3))
	if n.MaxDepth() != 3 {
		t.Fatalf("MaxDepth() = %d, want 3", n.MaxDepth())
	}

	entries, err := n.Normalize("data", deep(3))
	if err != nil {
		t.Fatalf("depth 3 should succeed: %v", err)
	}
	if got := entriesString(entries); got != `data-k-k-k="leaf"` {
		t.Errorf("got %q", got)
	}

	_, err = n.Normalize("data", deep(4))
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("error = %v, want ErrTooDeep", err)
	}
	if !errors.Is(err, ErrInvalidShape) {
		t.Error("depth errors should also match ErrInvalidShape")
	}
}

func TestNormalizeVeryDeepInputDoesNotOverflow(t *testing.T) {
	var v Value = String("leaf")
	for i := 0; i < 100000; i++ {
		v = Map{SymField("k", v)}
	}
	n := New(WithMaxDepth(200000))
	entries, err := n.Normalize("d", v)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
}

func TestWithMaxDepthIgnoresInvalid(t *testing.T) {
	n := New(WithMaxDepth(0), WithMaxDepth(-5))
	if n.MaxDepth() != DefaultMaxDepth {
		t.Errorf("MaxDepth() = %d, want %d", n.MaxDepth(), DefaultMaxDepth)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	build := func() Value {
		return Map{
			SymField("controller", String("search")),
			SymField("search_target", List{Symbol("input"), String("x")}),
			StrField("action_name", Map{SymField("on_click", String("go"))}),
		}
	}

	first, err := Normalize("data", build())
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Normalize("data", build())
		if err != nil {
			t.Fatalf("Normalize error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}

	want := `data-controller="search" data-search-target="input x" data-action_name-on-click="go"`
	if got := entriesString(first); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeTextOutputIsStable(t *testing.T) {
	entries, err := Normalize("class", List{String("a"), Symbol("b")})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	again, err := Normalize(entries[0].Name, String(entries[0].Text()))
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !reflect.DeepEqual(entries, again) {
		t.Errorf("re-normalizing text changed output: %v vs %v", again, entries)
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	value := Map{SymField("name", Map{SymField("first_name", String("Joel"))})}
	n := New()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := n.Normalize("data", value)
			if err != nil {
				errs <- err
				return
			}
			if len(entries) != 1 || entries[0].Name != "data-name-first-name" {
				errs <- errors.New("unexpected entries: " + entriesString(entries))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestNormalizeAll(t *testing.T) {
	entries, err := NormalizeAll(
		Attr{Name: "type", Value: "range"},
		Attr{Name: "min", Value: 0},
		Attr{Name: "max", Value: 10},
		Attr{Name: "step", Value: 0.5},
		Attr{Name: "hidden", Value: false},
		Attr{Name: "required", Value: true},
	)
	if err != nil {
		t.Fatalf("NormalizeAll error: %v", err)
	}
	want := `type="range" min="0" max="10" step="0.5" required`
	if got := entriesString(entries); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := NormalizeAll(Attr{Name: "", Value: "x"}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
	if _, err := NormalizeAll(Attr{Name: "x", Value: struct{}{}}); !errors.Is(err, ErrNotCoercible) {
		t.Errorf("error = %v, want ErrNotCoercible", err)
	}
}

func TestTextOf(t *testing.T) {
	text, err := TextOf(Float(0.25))
	if err != nil || text != "0.25" {
		t.Errorf("TextOf(0.25) = %q, %v", text, err)
	}
	if _, err := TextOf(List{}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("TextOf(List) error = %v, want ErrInvalidShape", err)
	}
}

func TestMapGetWith(t *testing.T) {
	m := Map{SymField("a", Int(1))}
	m = m.With(SymKey("b"), Int(2))
	m = m.With(SymKey("a"), Int(3))

	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	v, ok := m.Get(SymKey("a"))
	if !ok || v != Int(3) {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := m.Get(StrKey("a")); ok {
		t.Error("string key should not match symbol key")
	}
}

func TestKindString(t *testing.T) {
	if KindOf(Set{}).String() != "Set" {
		t.Errorf("KindOf(Set).String() = %q", KindOf(Set{}).String())
	}
	if Kind(200).String() != "Unknown" {
		t.Error("unknown kind should stringify as Unknown")
	}
}
