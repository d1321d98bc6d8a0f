package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Ethereum            EthereumConfig            `yaml:"ethereum" json:"ethereum"`
	PubSub              PubSubConfig              `yaml:"pubsub" json:"pub_sub"`
	Consumer            ServiceConfig             `yaml:"consumer" json:"consumer"`
	Webhook             WebhookConfig             `yaml:"webhook" json:"webhook"`
}

type GoogleSecretManagerConfig struct {
	Enabled           bool   `yaml:"enabled" json:"enabled"`
	ProjectId         string `yaml:"project_id" json:"project_id"`
	MongoSecretName   string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	WebhookSecretName string `yaml:"webhook_secret_name" json:"webhook_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type EthereumConfig struct {
	RPCURL                 string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis       int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID                string `yaml:"chain_id" json:"chain_id"`
	EditionContractAddress string `yaml:"edition_contract_address" json:"edition_contract_address"`
	DeployerAddress        string `yaml:"deployer_address" json:"deployer_address"`
}

type PubSubConfig struct {
	ProjectId          string `yaml:"project_id" json:"project_id"`
	NftTopic           string `yaml:"nft_topic" json:"nft_topic"`
	TreasuryTopic      string `yaml:"treasury_topic" json:"treasury_topic"`
	PolygonTopic       string `yaml:"polygon_topic" json:"polygon_topic"`
	SubscriptionPrefix string `yaml:"subscription_prefix" json:"subscription_prefix"`
}

type ServiceConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

type WebhookConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled"`
	Port       uint64 `yaml:"port" json:"port"`
	Path       string `yaml:"path" json:"path"`
	SigningKey string `yaml:"signing_key" json:"signing_key"`
}
