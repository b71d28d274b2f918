package types

// CreateFactoryRequest 为租户创建专属工厂
type CreateFactoryRequest struct {
	ServerID string `json:"server_id" binding:"required" validate:"required,max=200"`
	Owner    string `json:"owner" binding:"required" validate:"required"`
	Caller   string `json:"caller" binding:"required" validate:"required"`
}

type FactoryResp struct {
	Address        string   `json:"address"`
	ServerID       string   `json:"server_id"`
	Owner          string   `json:"owner"`
	Initialized    bool     `json:"initialized"`
	Implementation string   `json:"implementation"`
	Campaigns      []string `json:"campaigns,omitempty"`
}

type RegistryOverviewResp struct {
	FactoryCount     int      `json:"factory_count"`
	Factories        []string `json:"factories"`
	FactoryTemplate  string   `json:"factory_template"`
	CampaignTemplate string   `json:"campaign_template"`
}

type ServerLookupResp struct {
	ServerID string `json:"server_id"`
	Factory  string `json:"factory"`
	Exists   bool   `json:"exists"`
}
