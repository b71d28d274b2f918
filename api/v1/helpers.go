package v1

import (
	"github.com/pkg/errors"

	"github.com/drophub/DropHubEnd/contract"
	"github.com/drophub/DropHubEnd/errcode"
	service "github.com/drophub/DropHubEnd/service/v1"
)

// wrapErr 把核心错误翻到HTTP错误码
// 查不到的资源到404，权限类到403，状态类到409，其余走业务自定义错误
func wrapErr(err error) *errcode.Err {
	switch {
	case errors.Is(err, service.ErrFactoryNotFound) ||
		errors.Is(err, service.ErrCampaignNotFound) ||
		errors.Is(err, service.ErrProofNotFound):
		return errcode.NewErr(errcode.CodeNotFound, err.Error())
	case errors.Is(err, contract.ErrNotOwner) || errors.Is(err, contract.ErrCallerMismatch):
		return errcode.NewErr(errcode.CodeUnauthorized, err.Error())
	case errors.Is(err, contract.ErrDuplicateTenant) ||
		errors.Is(err, contract.ErrAlreadyInitialized) ||
		errors.Is(err, contract.ErrAlreadyClaimed) ||
		errors.Is(err, contract.ErrClaimPeriodExpired) ||
		errors.Is(err, contract.ErrWithdrawalTooEarly) ||
		errors.Is(err, contract.ErrNothingToWithdraw):
		return errcode.NewErr(errcode.CodeConflict, err.Error())
	default:
		return errcode.NewCustomErr(err.Error())
	}
}
