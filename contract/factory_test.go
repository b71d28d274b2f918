package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drophub/DropHubEnd/merkle"
)

func TestFactoryInitializeOnce(t *testing.T) {
	rig := newTestRig(t)
	factory := rig.newFactory(t, "guild-1001")

	err := factory.Initialize(nil, "guild-other", bobAddr)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	// 身份字段不受失败的二次初始化影响
	assert.Equal(t, "guild-1001", factory.ServerID())
	assert.Equal(t, ownerAddr, factory.Owner())
}

func TestFactoryRejectsBeforeInitialize(t *testing.T) {
	rig := newTestRig(t)
	orphan := newFactoryTemplate(rig.env, adminAddr).clone(adminAddr)

	_, err := orphan.CreateAirdropAndFund(ownerAddr, rig.token, common.HexToHash("0x01"), "", big.NewInt(1))
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestFactoryCreateAirdropValidatesInput(t *testing.T) {
	rig := newTestRig(t)
	factory := rig.newFactory(t, "guild-1001")
	root := common.HexToHash("0x01")

	_, err := factory.CreateAirdropAndFund(ownerAddr, nil, root, "", big.NewInt(1))
	assert.ErrorIs(t, err, ErrZeroToken)

	_, err = factory.CreateAirdropAndFund(ownerAddr, rig.token, common.Hash{}, "", big.NewInt(1))
	assert.ErrorIs(t, err, ErrZeroRoot)

	_, err = factory.CreateAirdropAndFund(ownerAddr, rig.token, root, "", nil)
	assert.ErrorIs(t, err, ErrZeroAmount)

	_, err = factory.CreateAirdropAndFund(ownerAddr, rig.token, root, "", big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroAmount)

	assert.Empty(t, factory.GetAllCampaigns())
}

func TestFactoryCreateAndFund(t *testing.T) {
	rig := newTestRig(t)
	factory := rig.newFactory(t, "guild-1001")

	total := big.NewInt(3000)
	leaf := merkle.LeafHash(0, aliceAddr, total)
	campaign := rig.fundedCampaign(t, factory, leaf, total)

	// 创建者全额注资，资金落在活动地址上
	assert.Equal(t, total, rig.token.BalanceOf(campaign.Address()))
	assert.Equal(t, 0, rig.token.BalanceOf(ownerAddr).Sign())
	assert.Equal(t, 0, rig.token.Allowance(ownerAddr, factory.Address()).Sign())

	assert.Equal(t, ownerAddr, campaign.Owner())
	assert.Equal(t, leaf, campaign.MerkleRoot())
	assert.Equal(t, "ipfs://meta", campaign.MetadataURI())
	assert.Equal(t, total, campaign.TotalAmount())

	got, ok := factory.GetCampaign(campaign.Address())
	require.True(t, ok)
	assert.Same(t, campaign, got)
	assert.Equal(t, []common.Address{campaign.Address()}, factory.GetAllCampaigns())
}

// 授权不足时整个创建作废，工厂不登记任何活动
func TestFactoryFundingFailureAbortsCreation(t *testing.T) {
	rig := newTestRig(t)
	factory := rig.newFactory(t, "guild-1001")

	total := big.NewInt(3000)
	require.NoError(t, rig.token.Mint(ownerAddr, total))
	require.NoError(t, rig.token.Approve(ownerAddr, factory.Address(), big.NewInt(2999)))

	_, err := factory.CreateAirdropAndFund(ownerAddr, rig.token, common.HexToHash("0x01"), "", total)
	assert.ErrorIs(t, err, ErrInsufficientAllowance)

	assert.Empty(t, factory.GetAllCampaigns())
	assert.Equal(t, total, rig.token.BalanceOf(ownerAddr))

	// 余额不足同样中止
	require.NoError(t, rig.token.Approve(aliceAddr, factory.Address(), total))
	_, err = factory.CreateAirdropAndFund(aliceAddr, rig.token, common.HexToHash("0x01"), "", total)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Empty(t, factory.GetAllCampaigns())
}

func TestFactoryCampaignsAreIndependent(t *testing.T) {
	rig := newTestRig(t)
	factory := rig.newFactory(t, "guild-1001")

	amountA := big.NewInt(1000)
	amountB := big.NewInt(2000)
	c1 := rig.fundedCampaign(t, factory, merkle.LeafHash(0, aliceAddr, amountA), amountA)
	c2 := rig.fundedCampaign(t, factory, merkle.LeafHash(0, bobAddr, amountB), amountB)

	require.NotEqual(t, c1.Address(), c2.Address())

	// c1 的领取不会波及 c2 的位图和余额
	require.NoError(t, c1.Claim(aliceAddr, 0, aliceAddr, amountA, nil))
	assert.True(t, c1.IsClaimed(0))
	assert.False(t, c2.IsClaimed(0))
	assert.Equal(t, amountB, rig.token.BalanceOf(c2.Address()))

	assert.Equal(t, []common.Address{c1.Address(), c2.Address()}, factory.GetAllCampaigns())
}

func TestFactoryEmitsAirdropCreated(t *testing.T) {
	rig := newTestRig(t)
	factory := rig.newFactory(t, "guild-1001")

	sink := &eventRecorderSink{}
	rig.env.Subscribe(sink)

	total := big.NewInt(500)
	campaign := rig.fundedCampaign(t, factory, merkle.LeafHash(0, aliceAddr, total), total)

	require.Equal(t, []string{"CampaignInitialized", "AirdropCreated"}, sink.names())
	created := sink.events[1].(AirdropCreatedEvent)
	assert.Equal(t, campaign.Address(), created.Campaign)
	assert.Equal(t, ownerAddr, created.Caller)
	assert.Equal(t, "guild-1001", created.ServerID)
	assert.Equal(t, factory.Address(), created.Factory)
	assert.Equal(t, rig.token.Address(), created.Token)
	assert.Equal(t, total, created.TotalAmount)
}
