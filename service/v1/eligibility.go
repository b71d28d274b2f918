package service

import (
	"context"
	"encoding/json"
	"time"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/txaty/go-merkletree"
	"go.uber.org/zap"

	xcommon "github.com/drophub/DropHubEnd/common"
	"github.com/drophub/DropHubEnd/logger/xzap"
	"github.com/drophub/DropHubEnd/merkle"
	"github.com/drophub/DropHubEnd/service/svc"
	"github.com/drophub/DropHubEnd/stores/gdb/distribution"
	types "github.com/drophub/DropHubEnd/types/v1"
)

// EligibilityLeaf 一个待承诺的领取条目
type EligibilityLeaf struct {
	Index   uint64
	Account gethcommon.Address
	Amount  string
}

// leafBlock 实现 merkletree.DataBlock，序列化结果就是叶子的打包编码
// 树对它做一次keccak得到叶子哈希，与线上校验方的LeafHash一致
type leafBlock struct {
	data []byte
}

func (b *leafBlock) Serialize() ([]byte, error) {
	return b.data, nil
}

// 包装 Keccak256 为 merkletree 所需的 HashFunc 类型
func keccak256Wrapper(data []byte) ([]byte, error) {
	return crypto.Keccak256(data), nil
}

// BuildEligibilityTree 由名单建树，返回根哈希和每个条目的证明
// 建树方式必须与线上校验一致：keccak + 排序兄弟节点
func BuildEligibilityTree(leaves []EligibilityLeaf) (gethcommon.Hash, [][]gethcommon.Hash, error) {
	if len(leaves) == 0 {
		return gethcommon.Hash{}, nil, errors.New("empty eligibility list")
	}

	parsed := make([]*parsedLeaf, len(leaves))
	seen := make(map[uint64]bool, len(leaves))
	for i, leaf := range leaves {
		amount, err := xcommon.ParseAmount(leaf.Amount)
		if err != nil {
			return gethcommon.Hash{}, nil, err
		}
		if seen[leaf.Index] {
			return gethcommon.Hash{}, nil, errors.Errorf("duplicate claim index %d", leaf.Index)
		}
		seen[leaf.Index] = true
		parsed[i] = &parsedLeaf{
			hash: merkle.LeafHash(leaf.Index, leaf.Account, amount),
			data: merkle.LeafData(leaf.Index, leaf.Account, amount),
		}
	}

	// 单叶子树没有兄弟节点，根就是叶子哈希本身
	if len(parsed) == 1 {
		return parsed[0].hash, [][]gethcommon.Hash{{}}, nil
	}

	blocks := make([]merkletree.DataBlock, len(parsed))
	for i, p := range parsed {
		blocks[i] = &leafBlock{data: p.data}
	}

	tree, err := merkletree.New(&merkletree.Config{
		HashFunc:         keccak256Wrapper,
		Mode:             merkletree.ModeProofGenAndTreeBuild,
		SortSiblingPairs: true,
	}, blocks)
	if err != nil {
		return gethcommon.Hash{}, nil, errors.Wrap(err, "build merkle tree")
	}

	proofs := make([][]gethcommon.Hash, len(blocks))
	for i, block := range blocks {
		proof, err := tree.Proof(block)
		if err != nil {
			return gethcommon.Hash{}, nil, errors.Wrap(err, "generate proof")
		}
		siblings := make([]gethcommon.Hash, len(proof.Siblings))
		for j, sibling := range proof.Siblings {
			siblings[j] = gethcommon.BytesToHash(sibling)
		}
		proofs[i] = siblings
	}
	return gethcommon.BytesToHash(tree.Root), proofs, nil
}

type parsedLeaf struct {
	hash gethcommon.Hash
	data []byte
}

// BuildEligibility 建树并把叶子和证明落库，供领取方按账户查询
func BuildEligibility(ctx context.Context, s *svc.ServerCtx, req types.BuildEligibilityRequest) (*types.BuildEligibilityResp, error) {
	leaves := make([]EligibilityLeaf, len(req.Entries))
	for i, entry := range req.Entries {
		account, err := xcommon.UnifyAddress(entry.Account)
		if err != nil {
			return nil, err
		}
		leaves[i] = EligibilityLeaf{Index: entry.Index, Account: account, Amount: entry.Amount}
	}

	root, proofs, err := BuildEligibilityTree(leaves)
	if err != nil {
		return nil, err
	}

	batch := &distribution.EligibilityBatch{
		BatchID:   uuid.NewString(),
		Root:      root.Hex(),
		LeafCount: len(leaves),
		CreatedAt: time.Now(),
	}
	rows := make([]*distribution.EligibilityLeaf, len(leaves))
	for i, leaf := range leaves {
		proofJSON, err := encodeProof(proofs[i])
		if err != nil {
			return nil, err
		}
		rows[i] = &distribution.EligibilityLeaf{
			Root:      root.Hex(),
			LeafIndex: leaf.Index,
			Account:   leaf.Account.Hex(),
			Amount:    leaf.Amount,
			Proof:     proofJSON,
		}
	}
	if err := s.Dao.CreateEligibilityBatch(ctx, batch, rows); err != nil {
		return nil, errors.Wrap(err, "store eligibility batch")
	}

	xzap.WithContext(ctx).Info("eligibility batch built",
		zap.String("batch_id", batch.BatchID),
		zap.String("root", batch.Root),
		zap.Int("leaf_count", batch.LeafCount))
	return &types.BuildEligibilityResp{
		BatchID:   batch.BatchID,
		Root:      batch.Root,
		LeafCount: batch.LeafCount,
	}, nil
}

// GetProof 按根哈希和账户查证明，前面挂了一层过期缓存
func GetProof(ctx context.Context, s *svc.ServerCtx, root, account string) (*types.ProofResp, error) {
	rootHash, err := xcommon.ParseRoot(root)
	if err != nil {
		return nil, err
	}
	addr, err := xcommon.UnifyAddress(account)
	if err != nil {
		return nil, err
	}

	cacheKey := rootHash.Hex() + ":" + addr.Hex()
	v, err := s.ProofCache.Take(cacheKey, func() (interface{}, error) {
		leaf, err := s.Dao.GetEligibilityLeaf(ctx, rootHash.Hex(), addr.Hex())
		if err != nil {
			return nil, ErrProofNotFound
		}
		proof, err := decodeProof(leaf.Proof)
		if err != nil {
			return nil, err
		}
		return &types.ProofResp{
			Root:    leaf.Root,
			Index:   leaf.LeafIndex,
			Account: leaf.Account,
			Amount:  leaf.Amount,
			Proof:   proof,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.ProofResp), nil
}

// encodeProof 证明转成十六进制字符串数组的JSON，与叶子记录一起落库
func encodeProof(proof []gethcommon.Hash) (string, error) {
	hexStrings := make([]string, len(proof))
	for i, h := range proof {
		hexStrings[i] = hexutil.Encode(h.Bytes())
	}
	data, err := json.Marshal(hexStrings)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeProof(proofJSON string) ([]string, error) {
	var hexStrings []string
	if err := json.Unmarshal([]byte(proofJSON), &hexStrings); err != nil {
		return nil, errors.Wrap(err, "decode proof")
	}
	return hexStrings, nil
}
