package models

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDeriveIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"@polkadot/counter-writer", "counter_writer"},
		{"counter", "counter"},
		{"org/sub/my-token.v2", "my_token_v2"},
		{"@scope/2fa", "_2fa"},
		{"@scope/type", "type_"},
		{"@scope/", "binding"},
		{"-", "__"},
		{"ünïcode", "_n_code"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveIdentifier(tt.input))
		})
	}
}

func TestDeriveIdentifier_AlwaysValidAndDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.String().Draw(rt, "packageName")

		first := DeriveIdentifier(name)
		second := DeriveIdentifier(name)
		if first != second {
			rt.Fatalf("non-deterministic: %q vs %q", first, second)
		}
		if !token.IsIdentifier(first) {
			rt.Fatalf("%q derived invalid identifier %q", name, first)
		}
		if first == "_" {
			rt.Fatalf("%q derived the blank identifier", name)
		}
	})
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "CounterWriter", TypeName("counter_writer"))
	assert.Equal(t, "Counter", TypeName("counter"))
	assert.True(t, token.IsExported(TypeName("_2fa")))
	assert.Regexp(t, "^Contract", TypeName("_2fa"))
	assert.Equal(t, "Type", TypeName("type_"))
	assert.Equal(t, "ERC20", TypeName("ERC20"))
}
