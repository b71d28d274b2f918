package common

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// UnifyAddress 校验并归一化地址入参
func UnifyAddress(address string) (common.Address, error) {
	if len(address) <= 2 || !common.IsHexAddress(address) {
		return common.Address{}, errors.New("user address is illegal")
	}
	return common.HexToAddress(address), nil
}

// ParseAmount 解析十进制金额字符串，必须为正整数
func ParseAmount(amount string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return nil, errors.Errorf("invalid amount %q", amount)
	}
	if v.Sign() <= 0 {
		return nil, errors.Errorf("amount %q is not positive", amount)
	}
	return v, nil
}

// ParseRoot 解析32字节根哈希，零根视为非法
func ParseRoot(root string) (common.Hash, error) {
	h := common.HexToHash(root)
	if h == (common.Hash{}) {
		return common.Hash{}, errors.New("merkle root is zero")
	}
	return h, nil
}
