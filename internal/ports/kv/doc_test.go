package kv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoc_Number(t *testing.T) {
	d := Doc{
		"f":      45.5,
		"i":      7,
		"s":      " 12 ",
		"jn":     json.Number("3.25"),
		"bad":    "abc",
		"bool":   true,
		"absent": nil,
	}

	cases := []struct {
		key  string
		want float64
		ok   bool
	}{
		{"f", 45.5, true},
		{"i", 7, true},
		{"s", 12, true},
		{"jn", 3.25, true},
		{"bad", 0, false},
		{"bool", 0, false},
		{"absent", 0, false},
		{"missing", 0, false},
	}
	for _, tc := range cases {
		got, ok := d.Number(tc.key)
		assert.Equal(t, tc.ok, ok, tc.key)
		assert.Equal(t, tc.want, got, tc.key)
	}
}

func TestDoc_Bool(t *testing.T) {
	d := Doc{"b": true, "s": "false", "n": 1.0}

	v, ok := d.Bool("b")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = d.Bool("s")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = d.Bool("n")
	assert.False(t, ok)

	_, ok = d.Bool("missing")
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	d, err := Decode([]byte(`{"a":1,"b":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, "x", d.String("b"))

	d, err = Decode([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = Decode([]byte(`42`))
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = Decode([]byte(`{`))
	assert.Error(t, err)
}

func TestCleanPath(t *testing.T) {
	p, err := CleanPath("/feeding//meals/")
	require.NoError(t, err)
	assert.Equal(t, "feeding/meals", p)

	_, err = CleanPath("  ")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = CleanPath("feeding/../x")
	assert.ErrorIs(t, err, ErrInvalidPath)

	assert.True(t, ValidKey("abc-123"))
	assert.False(t, ValidKey("a/b"))
	assert.False(t, ValidKey(""))
}
