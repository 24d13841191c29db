package attr

import (
	"fmt"
	"testing"
)

func BenchmarkNormalizeScalar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Normalize("step", Float(0.5))
	}
}

func BenchmarkNormalizeNestedMap(b *testing.B) {
	v := Map{
		SymField("user", Map{
			SymField("first_name", String("Joel")),
			SymField("last_name", String("Drapper")),
			SymField("roles", List{Symbol("admin"), Symbol("editor")}),
		}),
		StrField("raw_key", Int(7)),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Normalize("data", v)
	}
}

func BenchmarkNormalizeLargeList(b *testing.B) {
	list := make(List, 0, 1000)
	for i := 0; i < 1000; i++ {
		list = append(list, String(fmt.Sprintf("class-%d", i)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Normalize("class", list)
	}
}

func BenchmarkNormalizeAnyGoMap(b *testing.B) {
	v := map[Symbol]any{
		"first_name": "Joel",
		"tags":       []string{"a", "b", "c"},
		"active":     true,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeAny("data", v)
	}
}
