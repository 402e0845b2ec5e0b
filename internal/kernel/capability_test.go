package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImpl(t *testing.T) {
	tests := []struct {
		in   string
		want Impl
		ok   bool
	}{
		{"generic", Generic, true},
		{"  Unrolled ", Unrolled, true},
		{"UNROLLED", Unrolled, true},
		{"avx512", Generic, false},
		{"", Generic, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseImpl(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestImplString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "unrolled", Unrolled.String())
	assert.Equal(t, "unknown", Impl(42).String())
}

func TestSelectBestImpl(t *testing.T) {
	savedAVX2, savedASIMD := hasAVX2, hasASIMD
	defer func() { hasAVX2, hasASIMD = savedAVX2, savedASIMD }()

	hasAVX2, hasASIMD = false, false
	assert.Equal(t, Generic, selectBestImpl())

	hasAVX2 = true
	assert.Equal(t, Unrolled, selectBestImpl())

	hasAVX2, hasASIMD = false, true
	assert.Equal(t, Unrolled, selectBestImpl())
}

func TestInitCapabilitiesOverride(t *testing.T) {
	savedImpl, savedOverride := activeImpl, hasOverride
	defer func() { activeImpl, hasOverride = savedImpl, savedOverride }()

	t.Setenv(EnvOverride, "generic")
	hasOverride = false
	initCapabilities()
	assert.Equal(t, Generic, ActiveImpl())
	assert.True(t, IsOverridden())

	t.Setenv(EnvOverride, "unrolled")
	initCapabilities()
	assert.Equal(t, Unrolled, ActiveImpl())

	t.Setenv(EnvOverride, "bogus")
	hasOverride = false
	initCapabilities()
	assert.Equal(t, selectBestImpl(), ActiveImpl())
	assert.False(t, IsOverridden())
}
