package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "CREATE FOO 10", Normalize("create foo 10"))
	assert.Equal(t, "CREATE FOO 10", Normalize("CrEaTe FoO 10\r\n"))
	assert.Equal(t, "  LIST ", Normalize("  list "), "spaces are kept")
	assert.Equal(t, "", Normalize("\n"))
	assert.Equal(t, "CREATE STRAßE 1", Normalize("create straße 1"), "only a-z is mapped")
	assert.Equal(t, "ÄÖ éÉ", Normalize("ÄÖ éÉ"))
	assert.Equal(t, "DEL A\xffB", Normalize("del a\xffb"), "invalid UTF-8 keeps its bytes")
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
		ok   bool
	}{
		{"LIST", Command{Name: "LIST"}, true},
		{"CREATE FOO 10", Command{Name: "CREATE", Arg1: "FOO", Arg2: "10"}, true},
		{"   CREATE   FOO   10", Command{Name: "CREATE", Arg1: "FOO", Arg2: "10"}, true},
		{"DEL FOO", Command{Name: "DEL", Arg1: "FOO"}, true},
		{"RENAME A B C", Command{Name: "RENAME", Arg1: "A", Arg2: "B"}, true},
		{"CREATE FOO ", Command{Name: "CREATE", Arg1: "FOO"}, true},
		{"", Command{}, false},
		{"    ", Command{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := Parse(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
