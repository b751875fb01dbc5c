package fsm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Event
	}{
		{input: "1", want: Number(1)},
		{input: "0x1", want: Number(1)},
		{input: "0X1F", want: Number(0x1f)},
		{input: "  42 \n", want: Number(42)},
		{input: "0xffffffffffffffff", want: Number(0xffffffffffffffff)},
		{input: "18446744073709551615", want: Number(18446744073709551615)},
		{input: "18446744073709551616", want: Text("18446744073709551616")},
		{input: "0x", want: Text("0x")},
		{input: "0xzz", want: Text("0xzz")},
		{input: "-1", want: Text("-1")},
		{input: "SCTLR_EL1", want: Text("sctlr_el1")},
		{input: "  Sctlr \r\n", want: Text("sctlr")},
		{input: "0a", want: Text("0a")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Classify(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\n", "\t \r\n"} {
		_, ok := Classify(input)
		assert.False(t, ok, "input %q must end the session", input)
	}
}
