package app

import (
	"os"
	"time"

	"github.com/holaplex/hub-nfts-polygon/models"
	log "github.com/sirupsen/logrus"
)

const HealthCheckName = "HEALTH"

// HealthCheckRunner periodically posts a heartbeat document with the health
// of every running service.
type HealthCheckRunner struct {
	hostname        string
	contractAddress string
	services        []models.Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	serviceHealths := []models.ServiceHealth{}
	for _, service := range x.services {
		health := service.Health()
		if health.Name == models.EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}

	health := models.Health{
		Hostname:        x.hostname,
		ContractAddress: x.contractAddress,
		ServiceHealths:  serviceHealths,
		CreatedAt:       time.Now(),
	}

	err := DB.InsertOne(models.CollectionHealthChecks, health)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func NewHealthCheck(services []models.Service) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Error("[HEALTH] Error getting hostname: ", err)
		hostname = "unknown"
	}

	return &HealthCheckRunner{
		hostname:        hostname,
		contractAddress: Config.Ethereum.EditionContractAddress,
		services:        services,
	}
}
