package contract

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateFactory(t *testing.T) {
	rig := newTestRig(t)

	factory := rig.newFactory(t, "guild-1001")

	assert.NotEqual(t, common.Address{}, factory.Address())
	assert.Equal(t, "guild-1001", factory.ServerID())
	assert.Equal(t, ownerAddr, factory.Owner())
	assert.True(t, factory.Initialized())
	assert.Equal(t, rig.registry.CampaignTemplate(), factory.Implementation())

	// 双向映射一致
	assert.Equal(t, factory.Address(), rig.registry.GetFactoryByServerId("guild-1001"))
	assert.Equal(t, "guild-1001", rig.registry.GetServerIdByFactory(factory.Address()))
	assert.True(t, rig.registry.IsServerFactoryExists("guild-1001"))

	got, ok := rig.registry.GetFactory(factory.Address())
	require.True(t, ok)
	assert.Same(t, factory, got)
}

func TestRegistryRejectsDuplicateServer(t *testing.T) {
	rig := newTestRig(t)
	rig.newFactory(t, "guild-1001")

	_, err := rig.registry.CreateFactoryForServer(adminAddr, "guild-1001", ownerAddr)
	assert.ErrorIs(t, err, ErrDuplicateTenant)
	assert.Equal(t, 1, rig.registry.GetFactoryCount())
}

func TestRegistryValidatesInput(t *testing.T) {
	rig := newTestRig(t)

	_, err := rig.registry.CreateFactoryForServer(adminAddr, "", ownerAddr)
	assert.ErrorIs(t, err, ErrEmptyIdentifier)

	_, err = rig.registry.CreateFactoryForServer(adminAddr, "guild-1001", common.Address{})
	assert.ErrorIs(t, err, ErrZeroOwner)

	assert.Equal(t, 0, rig.registry.GetFactoryCount())
}

func TestRegistryUnknownLookups(t *testing.T) {
	rig := newTestRig(t)

	assert.Equal(t, common.Address{}, rig.registry.GetFactoryByServerId("no-such-server"))
	assert.Equal(t, "", rig.registry.GetServerIdByFactory(aliceAddr))
	assert.False(t, rig.registry.IsServerFactoryExists("no-such-server"))

	_, ok := rig.registry.GetFactory(aliceAddr)
	assert.False(t, ok)
}

func TestRegistryEnumeratesInCreationOrder(t *testing.T) {
	rig := newTestRig(t)

	var want []common.Address
	for i := 0; i < 5; i++ {
		factory := rig.newFactory(t, fmt.Sprintf("guild-%d", i))
		want = append(want, factory.Address())
	}

	assert.Equal(t, 5, rig.registry.GetFactoryCount())
	assert.Equal(t, want, rig.registry.GetAllFactories())

	// 工厂地址互不相同，且不会撞上蓝图地址
	seen := map[common.Address]bool{
		rig.registry.FactoryTemplate():  true,
		rig.registry.CampaignTemplate(): true,
	}
	for _, addr := range want {
		assert.False(t, seen[addr])
		seen[addr] = true
	}
}

func TestRegistryEmitsFactoryCreated(t *testing.T) {
	rig := newTestRig(t)
	sink := &eventRecorderSink{}
	rig.env.Subscribe(sink)

	factory := rig.newFactory(t, "guild-1001")

	require.Equal(t, []string{"FactoryInitialized", "FactoryCreated"}, sink.names())
	created := sink.events[1].(FactoryCreatedEvent)
	assert.Equal(t, factory.Address(), created.Factory)
	assert.Equal(t, "guild-1001", created.ServerID)
	assert.Equal(t, ownerAddr, created.Owner)
	assert.Equal(t, adminAddr, created.Caller)
	assert.Equal(t, rig.registry.FactoryTemplate(), created.FactoryTemplate)
	assert.Equal(t, rig.registry.CampaignTemplate(), created.CampaignTemplate)
}
