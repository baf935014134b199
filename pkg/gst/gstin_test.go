package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice-api/pkg/gst"
)

func TestParseGSTIN_Validos(t *testing.T) {
	for _, in := range []string{"27AAPFU0939F1ZV", "29AAGCB7383J1Z4", "33AAACH7409R1Z8"} {
		g, err := gst.ParseGSTIN(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, g.Value)
		assert.Equal(t, in[:2], g.StateCode)
		assert.Equal(t, in[2:12], g.PAN)
		assert.Equal(t, in[14], g.Checksum)
	}
}

func TestParseGSTIN_Normaliza(t *testing.T) {
	g, err := gst.ParseGSTIN("  27aapfu0939f1zv ")
	require.NoError(t, err)
	assert.Equal(t, "27AAPFU0939F1ZV", g.Value)
}

func TestParseGSTIN_Invalidos(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"vacío", ""},
		{"corto", "27AAPFU0939F1Z"},
		{"largo", "27AAPFU0939F1ZVX"},
		{"control incorrecto", "07AAACR5055K1Z5"},
		{"PAN mal formado", "271APFU0939F1ZV"},
		{"estado inexistente", "45AAPFU0939F1ZV"},
		{"estado cero", "00AAPFU0939F1ZV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gst.ParseGSTIN(tt.in)
			assert.ErrorIs(t, err, gst.ErrInvalidGSTIN)
		})
	}
}

func TestComputeGSTINChecksum(t *testing.T) {
	c, err := gst.ComputeGSTINChecksum("07AAACR5055K1Z")
	require.NoError(t, err)
	assert.Equal(t, byte('9'), c)

	_, err = gst.ComputeGSTINChecksum("27AAPF")
	assert.ErrorIs(t, err, gst.ErrInvalidGSTIN)

	_, err = gst.ComputeGSTINChecksum("27AAPFU0939F1-")
	assert.ErrorIs(t, err, gst.ErrInvalidGSTIN)
}

func TestGSTIN_SameState(t *testing.T) {
	mh1, err := gst.ParseGSTIN("27AAPFU0939F1ZV")
	require.NoError(t, err)
	ka, err := gst.ParseGSTIN("29AAGCB7383J1Z4")
	require.NoError(t, err)

	assert.True(t, mh1.SameState(mh1))
	assert.False(t, mh1.SameState(ka))
	assert.False(t, gst.GSTIN{}.SameState(gst.GSTIN{}))
}
