package merkle

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// LeafHash 计算领取条目的叶子哈希
// 编码方式: keccak256(pad32(index) ++ account(20字节) ++ pad32(amount))
// 线下建树和线上校验必须使用完全相同的编码
func LeafHash(index uint64, account common.Address, amount *big.Int) common.Hash {
	return crypto.Keccak256Hash(LeafData(index, account, amount))
}

// LeafData 返回叶子哈希前的打包字节，建树方把它作为叶子块的序列化结果
func LeafData(index uint64, account common.Address, amount *big.Int) []byte {
	var data []byte
	data = append(data, common.LeftPadBytes(new(big.Int).SetUint64(index).Bytes(), 32)...)
	data = append(data, account.Bytes()...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
	return data
}

// HashPair 合并两个节点哈希，先排序再拼接
// 排序保证合并操作可交换，与 SortSiblingPairs 方式建出的树一致
func HashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a.Bytes(), b.Bytes())
}

// VerifyProof 校验默克尔证明能否从叶子还原出根哈希
func VerifyProof(leaf common.Hash, proof []common.Hash, root common.Hash) bool {
	computed := leaf
	for _, sibling := range proof {
		computed = HashPair(computed, sibling)
	}
	return computed == root
}
