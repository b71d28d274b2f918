package contract

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerTokenMintAndTransfer(t *testing.T) {
	rig := newTestRig(t)

	require.NoError(t, rig.token.Mint(aliceAddr, big.NewInt(100)))
	assert.Equal(t, big.NewInt(100), rig.token.BalanceOf(aliceAddr))

	require.NoError(t, rig.token.Transfer(aliceAddr, bobAddr, big.NewInt(40)))
	assert.Equal(t, big.NewInt(60), rig.token.BalanceOf(aliceAddr))
	assert.Equal(t, big.NewInt(40), rig.token.BalanceOf(bobAddr))

	err := rig.token.Transfer(aliceAddr, bobAddr, big.NewInt(61))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// 没铸过币的账户余额为零
	assert.Equal(t, 0, rig.token.BalanceOf(ownerAddr).Sign())
}

func TestLedgerTokenRejectsNonPositiveAmounts(t *testing.T) {
	rig := newTestRig(t)
	require.NoError(t, rig.token.Mint(aliceAddr, big.NewInt(100)))

	assert.Error(t, rig.token.Mint(aliceAddr, big.NewInt(0)))
	assert.Error(t, rig.token.Transfer(aliceAddr, bobAddr, nil))
	assert.Error(t, rig.token.Transfer(aliceAddr, bobAddr, big.NewInt(-5)))
}

func TestLedgerTokenApproveAndTransferFrom(t *testing.T) {
	rig := newTestRig(t)
	spender := adminAddr

	require.NoError(t, rig.token.Mint(aliceAddr, big.NewInt(100)))
	require.NoError(t, rig.token.Approve(aliceAddr, spender, big.NewInt(70)))
	assert.Equal(t, big.NewInt(70), rig.token.Allowance(aliceAddr, spender))

	require.NoError(t, rig.token.TransferFrom(spender, aliceAddr, bobAddr, big.NewInt(50)))
	assert.Equal(t, big.NewInt(50), rig.token.BalanceOf(bobAddr))
	// 授权额度随划转递减
	assert.Equal(t, big.NewInt(20), rig.token.Allowance(aliceAddr, spender))

	err := rig.token.TransferFrom(spender, aliceAddr, bobAddr, big.NewInt(21))
	assert.ErrorIs(t, err, ErrInsufficientAllowance)

	// 额度够但余额不够
	require.NoError(t, rig.token.Approve(bobAddr, spender, big.NewInt(999)))
	err = rig.token.TransferFrom(spender, bobAddr, aliceAddr, big.NewInt(51))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}
