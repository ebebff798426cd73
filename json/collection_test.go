package json

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	tests := []struct {
		name     string
		input    []Appender
		expected string
	}{
		{"empty", nil, "[]"},
		{"single", []Appender{Int(1)}, "[1]"},
		{"mixed", []Appender{Int(1), String("2"), Bool(false), Null()}, `[1,"2",false,null]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(Marshal(Array(tt.input))))
		})
	}
}

func TestArray_EqualsElementFold(t *testing.T) {
	values := []Appender{Int(1), String("x"), Bool(true)}

	var fold PartialArray
	for _, v := range values {
		fold = fold.Join(Element(v))
	}

	require.Equal(t, Marshal(fold), Marshal(Array(values)))
}

func TestSeq(t *testing.T) {
	counted := func(n int) iter.Seq[Appender] {
		return func(yield func(Appender) bool) {
			for i := 1; i <= n; i++ {
				if !yield(Int(i)) {
					return
				}
			}
		}
	}

	assert.Equal(t, "[]", string(Marshal(Seq(counted(0)))))
	assert.Equal(t, "[1]", string(Marshal(Seq(counted(1)))))
	assert.Equal(t, "[1,2,3]", string(Marshal(Seq(counted(3)))))
}

func TestRows(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "{}", string(Marshal(Rows[string, Appender]())))
	})

	t.Run("insertion order", func(t *testing.T) {
		got := Marshal(Rows(P("b", Int(2)), P("a", Int(1))))
		assert.Equal(t, `{"b":2,"a":1}`, string(got))
	})

	t.Run("duplicate keys are emitted as given", func(t *testing.T) {
		got := Marshal(Rows(P("k", Int(1)), P("k", Int(2))))
		assert.Equal(t, `{"k":1,"k":2}`, string(got))
	})

	t.Run("equals Row fold", func(t *testing.T) {
		pairs := []Pair[string, Appender]{P[string, Appender]("a", Int(1)), P[string, Appender]("b", Int(2))}

		var fold PartialObject
		for _, kv := range pairs {
			fold = fold.Join(Row(kv.Key, kv.Value))
		}

		require.Equal(t, Marshal(fold), Marshal(Rows(pairs...)))
	})
}

func TestMap(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "{}", string(Marshal(Map(map[string]Appender{}))))
	})

	t.Run("keys are sorted", func(t *testing.T) {
		m := map[string]Appender{"b": Int(2), "a": Int(1), "c": Int(3)}
		assert.Equal(t, `{"a":1,"b":2,"c":3}`, string(Marshal(Map(m))))
	})

	t.Run("deterministic across renders", func(t *testing.T) {
		m := map[string]Appender{"z": Null(), "m": Bool(true), "a": Int(0), "q": String("s")}

		first := Marshal(Map(m))
		for i := 0; i < 16; i++ {
			require.Equal(t, first, Marshal(Map(m)))
		}
	})

	t.Run("named string key type", func(t *testing.T) {
		type id string
		m := map[id]Appender{"one": Int(1)}
		assert.Equal(t, `{"one":1}`, string(Marshal(Map(m))))
	})
}
