package merkle

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafDataEncoding(t *testing.T) {
	account := common.HexToAddress("0x3c276c70Ad0447f5FbbeBC297793Be2A750704aE")
	amount := big.NewInt(1000)

	data := LeafData(7, account, amount)
	require.Len(t, data, 84) // 32 + 20 + 32

	assert.Equal(t, common.LeftPadBytes(big.NewInt(7).Bytes(), 32), data[:32])
	assert.Equal(t, account.Bytes(), data[32:52])
	assert.Equal(t, common.LeftPadBytes(amount.Bytes(), 32), data[52:])

	assert.Equal(t, crypto.Keccak256Hash(data), LeafHash(7, account, amount))
}

func TestLeafHashDistinguishesFields(t *testing.T) {
	a := common.HexToAddress("0x1111111111111111111111111111111111111111")
	b := common.HexToAddress("0x2222222222222222222222222222222222222222")

	base := LeafHash(0, a, big.NewInt(1000))
	assert.NotEqual(t, base, LeafHash(1, a, big.NewInt(1000)))
	assert.NotEqual(t, base, LeafHash(0, b, big.NewInt(1000)))
	assert.NotEqual(t, base, LeafHash(0, a, big.NewInt(1001)))
}

func TestHashPairCommutative(t *testing.T) {
	a := crypto.Keccak256Hash([]byte("a"))
	b := crypto.Keccak256Hash([]byte("b"))

	assert.Equal(t, HashPair(a, b), HashPair(b, a))
	assert.NotEqual(t, HashPair(a, b), HashPair(a, a))
}

// 手工搭一棵四叶子的树，逐个叶子校验证明
func TestVerifyProofFourLeaves(t *testing.T) {
	accounts := []common.Address{
		common.HexToAddress("0x1000000000000000000000000000000000000001"),
		common.HexToAddress("0x1000000000000000000000000000000000000002"),
		common.HexToAddress("0x1000000000000000000000000000000000000003"),
		common.HexToAddress("0x1000000000000000000000000000000000000004"),
	}

	leaves := make([]common.Hash, 4)
	for i, account := range accounts {
		leaves[i] = LeafHash(uint64(i), account, big.NewInt(int64(100*(i+1))))
	}

	n01 := HashPair(leaves[0], leaves[1])
	n23 := HashPair(leaves[2], leaves[3])
	root := HashPair(n01, n23)

	proofs := [][]common.Hash{
		{leaves[1], n23},
		{leaves[0], n23},
		{leaves[3], n01},
		{leaves[2], n01},
	}
	for i := range leaves {
		assert.True(t, VerifyProof(leaves[i], proofs[i], root), "leaf %d", i)
	}

	// 错叶子、错证明、错根都不能通过
	assert.False(t, VerifyProof(leaves[0], proofs[1], root))
	assert.False(t, VerifyProof(leaves[0], proofs[0], n01))
	tampered := []common.Hash{proofs[0][0], leaves[2]}
	assert.False(t, VerifyProof(leaves[0], tampered, root))
}

func TestVerifyProofSingleLeaf(t *testing.T) {
	leaf := LeafHash(0, common.HexToAddress("0x1000000000000000000000000000000000000001"), big.NewInt(1))
	assert.True(t, VerifyProof(leaf, nil, leaf))
	assert.False(t, VerifyProof(leaf, nil, common.Hash{}))
}
