package contract

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Token 外部代币账本协作方的接口约定
// 标准的 transfer/approve/balanceOf 语义，本系统只消费不定义
type Token interface {
	Address() common.Address
	BalanceOf(account common.Address) *big.Int
	Transfer(from, to common.Address, amount *big.Int) error
	TransferFrom(spender, from, to common.Address, amount *big.Int) error
	Approve(owner, spender common.Address, amount *big.Int) error
	Allowance(owner, spender common.Address) *big.Int
}

// LedgerToken 进程内的代币账本实现，服务层和测试用它驱动完整流程
type LedgerToken struct {
	mu         sync.RWMutex
	address    common.Address
	symbol     string
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

func NewLedgerToken(env *Env, symbol string) *LedgerToken {
	done := env.begin()
	defer done()
	return &LedgerToken{
		address:    env.nextAddress(common.Address{}),
		symbol:     symbol,
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
}

func (t *LedgerToken) Address() common.Address { return t.address }

func (t *LedgerToken) Symbol() string { return t.symbol }

func (t *LedgerToken) BalanceOf(account common.Address) *big.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if b, ok := t.balances[account]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// Mint 铸币，仅用于为发行方注资
func (t *LedgerToken) Mint(to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.credit(to, amount)
	return nil
}

func (t *LedgerToken) Transfer(from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.debit(from, amount); err != nil {
		return err
	}
	t.credit(to, amount)
	return nil
}

func (t *LedgerToken) TransferFrom(spender, from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	allowed := t.allowance(from, spender)
	if allowed.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientAllowance, "allowance %s < amount %s", allowed, amount)
	}
	if err := t.debit(from, amount); err != nil {
		return err
	}
	t.allowances[from][spender] = new(big.Int).Sub(allowed, amount)
	t.credit(to, amount)
	return nil
}

func (t *LedgerToken) Approve(owner, spender common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrZeroAmount
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[common.Address]*big.Int)
	}
	t.allowances[owner][spender] = new(big.Int).Set(amount)
	return nil
}

func (t *LedgerToken) Allowance(owner, spender common.Address) *big.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return new(big.Int).Set(t.allowance(owner, spender))
}

func (t *LedgerToken) allowance(owner, spender common.Address) *big.Int {
	if m, ok := t.allowances[owner]; ok {
		if a, ok := m[spender]; ok {
			return a
		}
	}
	return new(big.Int)
}

func (t *LedgerToken) debit(from common.Address, amount *big.Int) error {
	balance, ok := t.balances[from]
	if !ok || balance.Cmp(amount) < 0 {
		return errors.Wrapf(ErrInsufficientBalance, "balance of %s < amount %s", from.Hex(), amount)
	}
	t.balances[from] = new(big.Int).Sub(balance, amount)
	return nil
}

func (t *LedgerToken) credit(to common.Address, amount *big.Int) {
	if b, ok := t.balances[to]; ok {
		t.balances[to] = new(big.Int).Add(b, amount)
		return
	}
	t.balances[to] = new(big.Int).Set(amount)
}
