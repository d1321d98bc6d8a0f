package app

import (
	"io"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

// MockRunner is a mock implementation of the Runner interface for testing purposes.
type MockRunner struct {
	mu   sync.Mutex
	runs int
}

func (m *MockRunner) Run() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs += 1
}

func (m *MockRunner) Runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}

func TestRunnerService(t *testing.T) {
	mockRunner := &MockRunner{}
	interval := 100 * time.Millisecond
	wg := &sync.WaitGroup{}
	service := NewRunnerService("TestService", mockRunner, wg, interval)
	wg.Add(1)

	go service.Start()

	time.Sleep(600 * time.Millisecond)

	service.Stop()
	wg.Wait()

	health := service.Health()
	assert.True(t, health.Healthy)
	assert.Equal(t, "TestService", health.Name)
	assert.GreaterOrEqual(t, mockRunner.Runs(), 5)
	assert.Equal(t, health.NextSyncTime, health.LastSyncTime.Add(interval))
}

func TestNewRunnerServiceInvalidParameters(t *testing.T) {
	wg := &sync.WaitGroup{}
	invalidService := NewRunnerService("", nil, wg, 0)
	assert.Nil(t, invalidService)
}

func TestRunnerServiceStopTwice(t *testing.T) {
	wg := &sync.WaitGroup{}
	mockRunner := &MockRunner{}
	service := NewRunnerService("TestService", mockRunner, wg, 100*time.Millisecond)

	// stopping twice must not panic on a double close
	service.Stop()
	service.Stop()
}
