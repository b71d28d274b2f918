package common

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyAddress(t *testing.T) {
	got, err := UnifyAddress("0x3c276c70ad0447f5fbbebc297793be2a750704ae")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x3c276c70Ad0447f5FbbeBC297793Be2A750704aE"), got)

	for _, bad := range []string{"", "0x", "0x123", "not-an-address", "0xZZ76c70ad0447f5fbbebc297793be2a750704ae"} {
		_, err := UnifyAddress(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("1000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), v)

	for _, bad := range []string{"", "0", "-5", "1.5", "0x10", "abc"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseRoot(t *testing.T) {
	h, err := ParseRoot("0x00000000000000000000000000000000000000000000000000000000000000ff")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), h[31])

	_, err = ParseRoot("0x0")
	assert.Error(t, err)
	_, err = ParseRoot("")
	assert.Error(t, err)
}
