package service

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/threading"
	"go.uber.org/zap"

	"github.com/drophub/DropHubEnd/contract"
	"github.com/drophub/DropHubEnd/logger/xzap"
	"github.com/drophub/DropHubEnd/service/svc"
	"github.com/drophub/DropHubEnd/stores/gdb/distribution"
)

// Recorder 订阅核心事件并把创建、领取、提现记录落库
// 相当于链下索引器：核心状态保持O(1)，完整历史由这里归档
type Recorder struct {
	s  *svc.ServerCtx
	ch chan contract.Event
}

// StartRecorder 注册事件订阅并启动归档循环
func StartRecorder(s *svc.ServerCtx) *Recorder {
	r := &Recorder{
		s:  s,
		ch: make(chan contract.Event, 256),
	}
	s.Env.Subscribe(r)
	threading.GoSafe(r.loop)
	return r
}

// HandleEvent 在核心操作提交后被同步调用，只做入队不做IO
func (r *Recorder) HandleEvent(ev contract.Event) {
	select {
	case r.ch <- ev:
	default:
		xzap.WithContext(context.Background()).Warn("recorder queue full, drop event",
			zap.String("event", ev.EventName()))
	}
}

// Close 停止归档循环
func (r *Recorder) Close() {
	close(r.ch)
}

func (r *Recorder) loop() {
	for ev := range r.ch {
		r.persist(ev)
	}
}

func (r *Recorder) persist(ev contract.Event) {
	ctx := context.Background()
	log := xzap.WithContext(ctx)

	var err error
	switch e := ev.(type) {
	case contract.FactoryCreatedEvent:
		err = r.s.Dao.CreateFactoryRecord(ctx, &distribution.FactoryRecord{
			Address:          e.Factory.Hex(),
			ServerID:         e.ServerID,
			Owner:            e.Owner.Hex(),
			Caller:           e.Caller.Hex(),
			FactoryTemplate:  e.FactoryTemplate.Hex(),
			CampaignTemplate: e.CampaignTemplate.Hex(),
			BlockNumber:      e.BlockNumber,
			CreatedAt:        e.Timestamp,
		})
	case contract.AirdropCreatedEvent:
		grace := r.s.Env.GracePeriod()
		err = r.s.Dao.CreateCampaignRecord(ctx, &distribution.CampaignRecord{
			Address:         e.Campaign.Hex(),
			Factory:         e.Factory.Hex(),
			ServerID:        e.ServerID,
			Owner:           e.Caller.Hex(),
			Token:           e.Token.Hex(),
			MerkleRoot:      e.MerkleRoot.Hex(),
			MetadataURI:     e.MetadataURI,
			TotalAmount:     e.TotalAmount.String(),
			ClaimDeadline:   e.Timestamp.Add(grace),
			UnlockTimestamp: e.Timestamp.Add(grace),
			BlockNumber:     e.BlockNumber,
			CreatedAt:       e.Timestamp,
		})
	case contract.ClaimedEvent:
		err = r.s.Dao.CreateClaimRecord(ctx, &distribution.ClaimRecord{
			Campaign:   e.Campaign.Hex(),
			ClaimIndex: e.Index,
			Account:    e.Account.Hex(),
			Amount:     e.Amount.String(),
			CreatedAt:  time.Now(),
		})
	case contract.WithdrawnEvent:
		err = r.s.Dao.CreateWithdrawalRecord(ctx, &distribution.WithdrawalRecord{
			Campaign:  e.Campaign.Hex(),
			Owner:     e.Owner.Hex(),
			Amount:    e.Amount.String(),
			CreatedAt: time.Now(),
		})
	case contract.FactoryInitializedEvent, contract.CampaignInitializedEvent:
		// 初始化记录只进日志，不单独建表
	}
	if err != nil {
		log.Error("persist event failed",
			zap.String("event", ev.EventName()),
			zap.Error(err))
		return
	}
	log.Info("event recorded", zap.String("event", ev.EventName()))
}
