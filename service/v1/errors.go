package service

import "github.com/pkg/errors"

var (
	ErrFactoryNotFound  = errors.New("factory not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrProofNotFound    = errors.New("no proof for account under this root")
	ErrFaucetDisabled   = errors.New("dev faucet is disabled")
)
