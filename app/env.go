package app

import (
	"os"
	"strconv"

	"github.com/holaplex/hub-nfts-polygon/events"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	if os.Getenv("MONGODB_URI") != "" {
		Config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		Config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	if os.Getenv("MONGODB_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("MONGODB_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MONGODB_TIMEOUT_MS: ", err.Error())
		} else {
			Config.MongoDB.TimeoutMillis = timeoutMillis
		}
	}

	// ethereum
	if os.Getenv("ETH_RPC_URL") != "" {
		Config.Ethereum.RPCURL = os.Getenv("ETH_RPC_URL")
	}
	if os.Getenv("ETH_CHAIN_ID") != "" {
		Config.Ethereum.ChainID = os.Getenv("ETH_CHAIN_ID")
	}
	if os.Getenv("ETH_RPC_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("ETH_RPC_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing ETH_RPC_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Ethereum.RPCTimeoutMillis = timeoutMillis
		}
	}
	if os.Getenv("ETH_EDITION_CONTRACT_ADDRESS") != "" {
		Config.Ethereum.EditionContractAddress = os.Getenv("ETH_EDITION_CONTRACT_ADDRESS")
	}
	if os.Getenv("ETH_DEPLOYER_ADDRESS") != "" {
		Config.Ethereum.DeployerAddress = os.Getenv("ETH_DEPLOYER_ADDRESS")
	}

	// pubsub
	if os.Getenv("PUBSUB_PROJECT_ID") != "" {
		Config.PubSub.ProjectId = os.Getenv("PUBSUB_PROJECT_ID")
	}
	if os.Getenv("PUBSUB_NFT_TOPIC") != "" {
		Config.PubSub.NftTopic = os.Getenv("PUBSUB_NFT_TOPIC")
	}
	if os.Getenv("PUBSUB_TREASURY_TOPIC") != "" {
		Config.PubSub.TreasuryTopic = os.Getenv("PUBSUB_TREASURY_TOPIC")
	}
	if os.Getenv("PUBSUB_POLYGON_TOPIC") != "" {
		Config.PubSub.PolygonTopic = os.Getenv("PUBSUB_POLYGON_TOPIC")
	}
	if os.Getenv("PUBSUB_SUBSCRIPTION_PREFIX") != "" {
		Config.PubSub.SubscriptionPrefix = os.Getenv("PUBSUB_SUBSCRIPTION_PREFIX")
	}
	if Config.PubSub.NftTopic == "" {
		Config.PubSub.NftTopic = events.TopicNfts
	}
	if Config.PubSub.TreasuryTopic == "" {
		Config.PubSub.TreasuryTopic = events.TopicTreasuries
	}
	if Config.PubSub.PolygonTopic == "" {
		Config.PubSub.PolygonTopic = events.TopicPolygonNfts
	}

	// consumer
	if os.Getenv("CONSUMER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("CONSUMER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing CONSUMER_ENABLED: ", err.Error())
		} else {
			Config.Consumer.Enabled = enabled
		}
	}

	// webhook
	if os.Getenv("WEBHOOK_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("WEBHOOK_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing WEBHOOK_ENABLED: ", err.Error())
		} else {
			Config.Webhook.Enabled = enabled
		}
	}
	if os.Getenv("WEBHOOK_PORT") != "" {
		port, err := strconv.ParseUint(os.Getenv("WEBHOOK_PORT"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing WEBHOOK_PORT: ", err.Error())
		} else {
			Config.Webhook.Port = port
		}
	}
	if os.Getenv("WEBHOOK_PATH") != "" {
		Config.Webhook.Path = os.Getenv("WEBHOOK_PATH")
	}
	if os.Getenv("WEBHOOK_SIGNING_KEY") != "" {
		Config.Webhook.SigningKey = os.Getenv("WEBHOOK_SIGNING_KEY")
	}

	// health check
	if os.Getenv("HEALTH_CHECK_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("HEALTH_CHECK_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing HEALTH_CHECK_INTERVAL_MS: ", err.Error())
		} else {
			Config.HealthCheck.IntervalMillis = intervalMillis
		}
	}

	// logging
	if Config.Logger.Level == "" {
		logLevel := os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			Config.Logger.Level = "info"
		} else {
			Config.Logger.Level = logLevel
		}
	}

	// google secret manager
	if os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing GOOGLE_SECRET_MANAGER_ENABLED: ", err.Error())
		} else {
			Config.GoogleSecretManager.Enabled = enabled
		}
	}
	if Config.GoogleSecretManager.ProjectId == "" {
		Config.GoogleSecretManager.ProjectId = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if Config.GoogleSecretManager.MongoSecretName == "" {
		Config.GoogleSecretManager.MongoSecretName = os.Getenv("GOOGLE_MONGO_SECRET_NAME")
	}
	if Config.GoogleSecretManager.WebhookSecretName == "" {
		Config.GoogleSecretManager.WebhookSecretName = os.Getenv("GOOGLE_WEBHOOK_SECRET_NAME")
	}
}
