package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"(1, 2]", "(1, 2]"},
		{"( 3/2 , 4 ]", "(3/2, 4]"},
		{"[0.5,0.5]", "[1/2, 1/2]"},
		{"(-1, 2)", "(-1, 2)"},
		{"[6/4, 10/4)", "[3/2, 5/2)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			iv, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, iv.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		wantErr error
	}{
		{"", ErrInvalidSyntax},
		{"1, 2", ErrInvalidSyntax},
		{"{1, 2]", ErrInvalidSyntax},
		{"(1, 2}", ErrInvalidSyntax},
		{"(1, 2, 3]", ErrInvalidSyntax},
		{"(a, 2]", ErrInvalidSyntax},
		{"(1, x]", ErrInvalidSyntax},
		{"(3, 2]", ErrInvalidBounds},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInterval_YAMLRoundTrip(t *testing.T) {
	t.Parallel()
	type doc struct {
		Intervals []Interval `yaml:"intervals"`
	}

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("intervals:\n  - \"(1, 2]\"\n  - \"[1/2, 3/4)\"\n"), &d))
	require.Len(t, d.Intervals, 2)
	assert.Equal(t, "(1, 2]", d.Intervals[0].String())
	assert.Equal(t, "[1/2, 3/4)", d.Intervals[1].String())

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "(1, 2]")
}

func TestFormatList(t *testing.T) {
	t.Parallel()
	ivs, err := ParseAll([]string{"(3/2, 2]", "(2, 3]"})
	require.NoError(t, err)
	assert.Equal(t, "[(3/2, 2], (2, 3]]", FormatList(ivs))
	assert.Equal(t, "[]", FormatList(nil))
}
