package contract

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultGracePeriod 领取窗口和提现锁定共用的宽限期，当前均为7天
const DefaultGracePeriod = 7 * 24 * time.Hour

// Env 是进程内的执行环境，充当全序账本的角色：
// 所有状态变更操作都在同一把锁下串行执行（单个不可分割的工作单元），
// 时间戳、区块号、新实例地址都由它统一分配
type Env struct {
	mu sync.RWMutex

	now         func() time.Time
	blockNumber uint64
	gracePeriod time.Duration
	nonces      map[common.Address]uint64

	sinkMu sync.RWMutex
	sinks  []EventSink
}

func NewEnv() *Env {
	return &Env{
		now:         time.Now,
		gracePeriod: DefaultGracePeriod,
		nonces:      make(map[common.Address]uint64),
	}
}

// SetClock 替换时钟来源，测试里用它推进时间
func (e *Env) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// SetGracePeriod 调整宽限期，只影响之后创建的活动
func (e *Env) SetGracePeriod(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d > 0 {
		e.gracePeriod = d
	}
}

func (e *Env) GracePeriod() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gracePeriod
}

func (e *Env) Now() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.now()
}

func (e *Env) BlockNumber() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.blockNumber
}

// Subscribe 注册事件接收方，事件在操作提交后按序送出
func (e *Env) Subscribe(sink EventSink) {
	e.sinkMu.Lock()
	defer e.sinkMu.Unlock()
	e.sinks = append(e.sinks, sink)
}

// begin 进入一个状态变更操作：持锁并占用一个区块号
// 失败的操作同样消耗区块号，和真实账本一致
func (e *Env) begin() func() {
	e.mu.Lock()
	e.blockNumber++
	return e.mu.Unlock
}

func (e *Env) rbegin() func() {
	e.mu.RLock()
	return e.mu.RUnlock
}

// timestamp 持锁状态下读当前时间
func (e *Env) timestamp() time.Time {
	return e.now()
}

// nextAddress 为新部署的实例派生地址，按创建者nonce递增
func (e *Env) nextAddress(creator common.Address) common.Address {
	nonce := e.nonces[creator]
	e.nonces[creator]++
	return crypto.CreateAddress(creator, nonce)
}

func (e *Env) emit(ev Event) {
	e.sinkMu.RLock()
	sinks := e.sinks
	e.sinkMu.RUnlock()
	for _, s := range sinks {
		s.HandleEvent(ev)
	}
}
