package indexer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/models"
	"github.com/holaplex/hub-nfts-polygon/queue"
	log "github.com/sirupsen/logrus"
)

const IndexerName = "INDEXER"

// WebhookService serves the transfer-activity webhook. It implements
// models.Service so the health checker and the shutdown path treat it like
// the other runners.
type WebhookService struct {
	wg         *sync.WaitGroup
	server     *http.Server
	producer   queue.Producer
	signingKey []byte

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *WebhookService) Start() {
	log.Info("[INDEXER] Starting service on port ", app.Config.Webhook.Port)

	err := x.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("[INDEXER] Server error: ", err)
	}

	log.Info("[INDEXER] Stopped service")
	x.wg.Done()
}

func (x *WebhookService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *WebhookService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	x.health = models.ServiceHealth{
		Name:         IndexerName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func (x *WebhookService) Stop() {
	log.Debug("[INDEXER] Stopping service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := x.server.Shutdown(ctx); err != nil {
		log.Error("[INDEXER] Error shutting down server: ", err)
	}
}

func NewWebhook(wg *sync.WaitGroup, producer queue.Producer) models.Service {
	if !app.Config.Webhook.Enabled {
		log.Debug("[INDEXER] Webhook disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[INDEXER] Initializing webhook")

	x := &WebhookService{
		wg:         wg,
		producer:   producer,
		signingKey: []byte(app.Config.Webhook.SigningKey),
		health: models.ServiceHealth{
			Name:    IndexerName,
			Healthy: true,
		},
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST(app.Config.Webhook.Path, x.handleWebhook)

	x.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Config.Webhook.Port),
		Handler: router,
	}

	log.Debug("[INDEXER] Initialized webhook")

	return x
}
