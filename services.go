package main

import (
	"sync"
	"time"

	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/indexer"
	"github.com/holaplex/hub-nfts-polygon/models"
	"github.com/holaplex/hub-nfts-polygon/processor"
	"github.com/holaplex/hub-nfts-polygon/queue"
)

func createServices(wg *sync.WaitGroup, proc *processor.Processor, producer queue.Producer) []models.Service {
	consumer := queue.NewConsumer(wg, proc)
	webhook := indexer.NewWebhook(wg, producer)

	healthRunner := app.NewHealthCheck([]models.Service{consumer, webhook})
	health := app.NewRunnerService(
		app.HealthCheckName,
		healthRunner,
		wg,
		time.Millisecond*time.Duration(app.Config.HealthCheck.IntervalMillis),
	)

	return []models.Service{consumer, webhook, health}
}
