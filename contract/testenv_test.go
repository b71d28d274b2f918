package contract

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/drophub/DropHubEnd/merkle"
)

var (
	adminAddr = common.HexToAddress("0xAd00000000000000000000000000000000000001")
	ownerAddr = common.HexToAddress("0x0E00000000000000000000000000000000000001")
	aliceAddr = common.HexToAddress("0xA1000000000000000000000000000000000000aa")
	bobAddr   = common.HexToAddress("0xB0000000000000000000000000000000000000bb")
)

// testClock 可拨动的时钟，挂到 Env 上驱动时间相关分支
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Unix(1700000000, 0).UTC()}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testRig struct {
	env      *Env
	clock    *testClock
	registry *Registry
	token    *LedgerToken
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	env := NewEnv()
	clock := newTestClock()
	env.SetClock(clock.Now)
	return &testRig{
		env:      env,
		clock:    clock,
		registry: NewRegistry(env),
		token:    NewLedgerToken(env, "DHT"),
	}
}

func (r *testRig) newFactory(t *testing.T, serverID string) *Factory {
	t.Helper()
	factory, err := r.registry.CreateFactoryForServer(adminAddr, serverID, ownerAddr)
	require.NoError(t, err)
	return factory
}

// fundedCampaign 铸币、授权并走完整的创建+注资流程
func (r *testRig) fundedCampaign(t *testing.T, factory *Factory, root common.Hash, total *big.Int) *Campaign {
	t.Helper()
	require.NoError(t, r.token.Mint(ownerAddr, total))
	require.NoError(t, r.token.Approve(ownerAddr, factory.Address(), total))
	campaign, err := factory.CreateAirdropAndFund(ownerAddr, r.token, root, "ipfs://meta", total)
	require.NoError(t, err)
	return campaign
}

// twoLeafTree 两个叶子的最小树，返回根和每个叶子的证明
func twoLeafTree(l0, l1 common.Hash) (common.Hash, [][]common.Hash) {
	root := merkle.HashPair(l0, l1)
	return root, [][]common.Hash{{l1}, {l0}}
}

// haltedToken 注资放行但转账永远失败的代币桩，用来验证领取的回滚
type haltedToken struct {
	address common.Address
	funded  *big.Int
}

func (h *haltedToken) Address() common.Address { return h.address }

func (h *haltedToken) BalanceOf(common.Address) *big.Int { return new(big.Int).Set(h.funded) }

func (h *haltedToken) Transfer(from, to common.Address, amount *big.Int) error {
	return ErrInsufficientBalance
}

func (h *haltedToken) TransferFrom(spender, from, to common.Address, amount *big.Int) error {
	h.funded = new(big.Int).Set(amount)
	return nil
}

func (h *haltedToken) Approve(owner, spender common.Address, amount *big.Int) error { return nil }

func (h *haltedToken) Allowance(owner, spender common.Address) *big.Int {
	return new(big.Int).Set(h.funded)
}

// eventRecorderSink 同步收集事件，断言发射顺序用
type eventRecorderSink struct {
	events []Event
}

func (s *eventRecorderSink) HandleEvent(ev Event) { s.events = append(s.events, ev) }

func (s *eventRecorderSink) names() []string {
	out := make([]string, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.EventName()
	}
	return out
}
