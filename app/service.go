package app

import (
	"sync"
	"time"

	"github.com/holaplex/hub-nfts-polygon/models"
	log "github.com/sirupsen/logrus"
)

// Runner is a unit of periodic work hosted by a RunnerService.
type Runner interface {
	Run()
}

type RunnerService struct {
	name     string
	runner   Runner
	interval time.Duration
	wg       *sync.WaitGroup

	stop     chan bool
	stopOnce sync.Once

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Info("[", x.name, "] Starting service")
	stop := false
	for !stop {
		log.Debug("[", x.name, "] Starting sync")

		x.runner.Run()

		x.updateHealth()

		log.Debug("[", x.name, "] Finished sync, Sleeping for ", x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Info("[", x.name, "] Stopped service")
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()

	x.health = models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: lastSyncTime,
		NextSyncTime: lastSyncTime.Add(x.interval),
		Healthy:      true,
	}
}

func (x *RunnerService) Stop() {
	log.Debug("[", x.name, "] Stopping service")
	x.stopOnce.Do(func() {
		close(x.stop)
	})
}

func NewRunnerService(name string, runner Runner, wg *sync.WaitGroup, interval time.Duration) models.Service {
	if name == "" || runner == nil || interval == 0 {
		log.Error("[RUNNER] Invalid parameters for runner service")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		interval: interval,
		wg:       wg,
		stop:     make(chan bool),
		health: models.ServiceHealth{
			Name: name,
		},
	}
}
