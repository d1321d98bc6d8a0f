package app

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/holaplex/hub-nfts-polygon/app/mocks"
	"github.com/holaplex/hub-nfts-polygon/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
}

func (e *MockService) Start() {}

func (e *MockService) Stop() {
}

const MockServiceName = "mock"

func (e *MockService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         MockServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewMockService() models.Service {
	return &MockService{}
}

func TestPostHealth(t *testing.T) {

	t.Run("Skips Empty Services", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		wg := &sync.WaitGroup{}
		x := &HealthCheckRunner{
			hostname:        "hostname",
			contractAddress: "0xcontract",
			services: []models.Service{
				models.NewEmptyService(wg),
				NewMockService(),
			},
		}

		mockDB.EXPECT().InsertOne(models.CollectionHealthChecks, mock.Anything).
			Run(func(_ string, data interface{}) {
				health := data.(models.Health)
				assert.Equal(t, "hostname", health.Hostname)
				assert.Equal(t, "0xcontract", health.ContractAddress)
				assert.Equal(t, 1, len(health.ServiceHealths))
				assert.Equal(t, MockServiceName, health.ServiceHealths[0].Name)
			}).Return(nil)

		success := x.PostHealth()
		assert.True(t, success)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		x := &HealthCheckRunner{
			hostname: "hostname",
		}

		mockDB.EXPECT().InsertOne(mock.Anything, mock.Anything).Return(errors.New("error"))

		success := x.PostHealth()
		assert.False(t, success)
	})

	t.Run("Via Run", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB

		x := &HealthCheckRunner{
			hostname: "hostname",
		}

		mockDB.EXPECT().InsertOne(mock.Anything, mock.Anything).Return(errors.New("error"))

		x.Run()
	})

}

func TestNewHealthCheck(t *testing.T) {
	Config.Ethereum.EditionContractAddress = "0xcontract"

	wg := &sync.WaitGroup{}
	x := NewHealthCheck([]models.Service{models.NewEmptyService(wg)})

	assert.NotNil(t, x)
	assert.Equal(t, "0xcontract", x.contractAddress)
	assert.Equal(t, 1, len(x.services))
}
