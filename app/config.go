package app

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/holaplex/hub-nfts-polygon/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readSecretsFromGSM()
	validateConfig()
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		return false
	}
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s", configFile, err.Error())
	}
	return true
}

func validateConfig() {
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}
	if Config.Ethereum.RPCURL == "" {
		log.Fatal("[CONFIG] Ethereum.RPCURL is required")
	}
	if Config.Ethereum.ChainID == "" {
		log.Fatal("[CONFIG] Ethereum.ChainID is required")
	}
	if Config.Ethereum.EditionContractAddress == "" {
		log.Fatal("[CONFIG] Ethereum.EditionContractAddress is required")
	}
	if Config.Ethereum.DeployerAddress == "" {
		log.Fatal("[CONFIG] Ethereum.DeployerAddress is required")
	}
	if Config.Consumer.Enabled {
		if Config.PubSub.ProjectId == "" {
			log.Fatal("[CONFIG] PubSub.ProjectId is required")
		}
	}
	if Config.Webhook.Enabled {
		if Config.Webhook.Port == 0 {
			log.Fatal("[CONFIG] Webhook.Port is required")
		}
		if Config.Webhook.Path == "" {
			log.Fatal("[CONFIG] Webhook.Path is required")
		}
		if Config.Webhook.SigningKey == "" {
			log.Fatal("[CONFIG] Webhook.SigningKey is required")
		}
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}
}
