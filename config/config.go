package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Api     ApiConfig     `mapstructure:"api"`
	Db      DbConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Airdrop AirdropConfig `mapstructure:"airdrop"`
}

type ApiConfig struct {
	Port string `mapstructure:"port"`
}

type DbConfig struct {
	Dsn         string `mapstructure:"dsn"`
	MaxIdleConn int    `mapstructure:"max_idle_conn"`
	MaxOpenConn int    `mapstructure:"max_open_conn"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type AirdropConfig struct {
	// 领取窗口与提现锁定共用的宽限期（天）
	GracePeriodDays int `mapstructure:"grace_period_days"`
	// 进程内代币账本的符号
	TokenSymbol string `mapstructure:"token_symbol"`
	// 是否开放mint等开发用代币接口
	DevFaucet bool `mapstructure:"dev_faucet"`
	// 证明查询缓存的过期时间（秒）
	ProofCacheSeconds int `mapstructure:"proof_cache_seconds"`
}

// UnmarshalConfig 从toml文件读入配置
func UnmarshalConfig(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if c.Airdrop.GracePeriodDays <= 0 {
		c.Airdrop.GracePeriodDays = 7
	}
	if c.Airdrop.ProofCacheSeconds <= 0 {
		c.Airdrop.ProofCacheSeconds = 300
	}
	return c, nil
}
