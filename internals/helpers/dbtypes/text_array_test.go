package dbtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextArray_ValueAndScan(t *testing.T) {
	in := TextArray{"worship", "choir", "ushering team"}
	v, err := in.Value()
	require.NoError(t, err)

	var out TextArray
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestTextArray_NilValueIsEmptyArray(t *testing.T) {
	var in TextArray
	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestTextArray_ScanString(t *testing.T) {
	var out TextArray
	require.NoError(t, out.Scan("{a,b}"))
	assert.Equal(t, TextArray{"a", "b"}, out)
}
