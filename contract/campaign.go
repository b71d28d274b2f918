package contract

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/drophub/DropHubEnd/merkle"
)

// Campaign 一轮已注资、有时限的空投活动
// 每个活动只保存 O(1) 的承诺状态：根哈希、总额、领取位图
type Campaign struct {
	env     *Env
	address common.Address

	token           Token
	merkleRoot      common.Hash
	owner           common.Address
	metadataURI     string
	totalAmount     *big.Int
	claimDeadline   time.Time
	unlockTimestamp time.Time

	// 每个领取下标占一位，按64位字打包
	claimedBitmap map[uint64]uint64

	initialized bool
	withdrawn   bool
}

// newCampaignTemplate 构造注册中心持有的活动蓝图，蓝图本身永不初始化
func newCampaignTemplate(env *Env, creator common.Address) *Campaign {
	return &Campaign{
		env:     env,
		address: env.nextAddress(creator),
	}
}

// clone 从蓝图克隆一个全新实例，身份字段由 initialize 一次性写入
func (c *Campaign) clone(creator common.Address) *Campaign {
	return &Campaign{
		env:           c.env,
		address:       c.env.nextAddress(creator),
		claimedBitmap: make(map[uint64]uint64),
	}
}

// initialize 持锁状态下由工厂调用，活动创建和注资是同一个工作单元
func (c *Campaign) initialize(token Token, root common.Hash, owner common.Address, metadataURI string, totalAmount *big.Int) error {
	if c.initialized {
		return ErrAlreadyInitialized
	}
	now := c.env.timestamp()
	c.token = token
	c.merkleRoot = root
	c.owner = owner
	c.metadataURI = metadataURI
	c.totalAmount = new(big.Int).Set(totalAmount)
	c.claimDeadline = now.Add(c.env.gracePeriod)
	c.unlockTimestamp = now.Add(c.env.gracePeriod)
	c.initialized = true

	c.env.emit(CampaignInitializedEvent{
		Campaign:   c.address,
		Token:      token.Address(),
		Owner:      owner,
		MerkleRoot: root,
	})
	return nil
}

// Claim 领取一个叶子对应的奖励
// 校验顺序固定：时限 -> 调用者 -> 金额 -> 位图 -> 证明，
// 置位必须先于转账（checks-effects-interactions），转账失败则整体回滚
func (c *Campaign) Claim(caller common.Address, index uint64, account common.Address, amount *big.Int, proof []common.Hash) error {
	done := c.env.begin()
	defer done()

	now := c.env.timestamp()
	if !now.Before(c.claimDeadline) {
		return ErrClaimPeriodExpired
	}
	if caller != account {
		return ErrCallerMismatch
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	if c.isClaimed(index) {
		return ErrAlreadyClaimed
	}

	leaf := merkle.LeafHash(index, account, amount)
	if !merkle.VerifyProof(leaf, proof, c.merkleRoot) {
		return ErrInvalidProof
	}

	// 先置位再转账，转账失败时回退置位，保证不留半截效果
	c.setClaimed(index)
	if err := c.token.Transfer(c.address, account, amount); err != nil {
		c.clearClaimed(index)
		return errors.Wrap(err, "claim transfer failed")
	}

	c.env.emit(ClaimedEvent{
		Campaign: c.address,
		Index:    index,
		Account:  account,
		Amount:   new(big.Int).Set(amount),
	})
	return nil
}

// WithdrawRemaining 解锁后由活动所有者归集剩余资金
func (c *Campaign) WithdrawRemaining(caller common.Address) error {
	done := c.env.begin()
	defer done()

	if caller != c.owner {
		return ErrNotOwner
	}
	if c.env.timestamp().Before(c.unlockTimestamp) {
		return ErrWithdrawalTooEarly
	}
	balance := c.token.BalanceOf(c.address)
	if balance.Sign() == 0 {
		return ErrNothingToWithdraw
	}
	if err := c.token.Transfer(c.address, c.owner, balance); err != nil {
		return errors.Wrap(err, "withdraw transfer failed")
	}
	c.withdrawn = true

	c.env.emit(WithdrawnEvent{
		Campaign: c.address,
		Owner:    c.owner,
		Amount:   balance,
	})
	return nil
}

// IsClaimed 查询某个下标是否已领取
func (c *Campaign) IsClaimed(index uint64) bool {
	done := c.env.rbegin()
	defer done()
	return c.isClaimed(index)
}

// GetBalance 活动当前持有的代币余额
func (c *Campaign) GetBalance() *big.Int {
	return c.token.BalanceOf(c.address)
}

// GetDaysUntilExpiry 距领取截止剩余的整天数，过期后恒为0
func (c *Campaign) GetDaysUntilExpiry() uint64 {
	done := c.env.rbegin()
	defer done()
	return wholeDaysUntil(c.env.timestamp(), c.claimDeadline)
}

// GetDaysUntilWithdrawal 距提现解锁剩余的整天数，解锁后恒为0
func (c *Campaign) GetDaysUntilWithdrawal() uint64 {
	done := c.env.rbegin()
	defer done()
	return wholeDaysUntil(c.env.timestamp(), c.unlockTimestamp)
}

func (c *Campaign) Address() common.Address    { return c.address }
func (c *Campaign) Token() Token               { return c.token }
func (c *Campaign) MerkleRoot() common.Hash    { return c.merkleRoot }
func (c *Campaign) Owner() common.Address      { return c.owner }
func (c *Campaign) MetadataURI() string        { return c.metadataURI }
func (c *Campaign) ClaimDeadline() time.Time   { return c.claimDeadline }
func (c *Campaign) UnlockTimestamp() time.Time { return c.unlockTimestamp }

func (c *Campaign) TotalAmount() *big.Int {
	if c.totalAmount == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.totalAmount)
}

func wholeDaysUntil(now, deadline time.Time) uint64 {
	if !now.Before(deadline) {
		return 0
	}
	return uint64(deadline.Sub(now) / (24 * time.Hour))
}

func (c *Campaign) isClaimed(index uint64) bool {
	word := c.claimedBitmap[index/64]
	return word&(1<<(index%64)) != 0
}

func (c *Campaign) setClaimed(index uint64) {
	c.claimedBitmap[index/64] |= 1 << (index % 64)
}

func (c *Campaign) clearClaimed(index uint64) {
	c.claimedBitmap[index/64] &^= 1 << (index % 64)
}
