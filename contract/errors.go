package contract

import "github.com/pkg/errors"

// 配置类错误：入参不合法，在任何状态变更前拒绝
var (
	ErrEmptyIdentifier = errors.New("server id is empty")
	ErrZeroOwner       = errors.New("owner address is zero")
	ErrZeroToken       = errors.New("token is zero")
	ErrZeroRoot        = errors.New("merkle root is zero")
	ErrZeroAmount      = errors.New("amount is zero")
)

// 权限类错误
var (
	ErrNotOwner       = errors.New("caller is not the owner")
	ErrCallerMismatch = errors.New("caller is not the claim account")
)

// 状态类错误：读现有状态即可判定
var (
	ErrDuplicateTenant    = errors.New("factory already exists for server")
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("factory not initialized")
	ErrAlreadyClaimed     = errors.New("index already claimed")
	ErrClaimPeriodExpired = errors.New("claim period expired")
	ErrWithdrawalTooEarly = errors.New("withdrawal is still locked")
	ErrNothingToWithdraw  = errors.New("nothing to withdraw")
)

// 证明类错误：需要完整重算一次根哈希才能判定
var ErrInvalidProof = errors.New("invalid merkle proof")

// 代币账本错误，由外部账本协作方原样向上传播
var (
	ErrInsufficientBalance   = errors.New("insufficient token balance")
	ErrInsufficientAllowance = errors.New("insufficient token allowance")
)
