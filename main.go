package main

import (
	"context"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"cloud.google.com/go/pubsub"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/eth/client"
	"github.com/holaplex/hub-nfts-polygon/eth/contract"
	"github.com/holaplex/hub-nfts-polygon/processor"
	"github.com/holaplex/hub-nfts-polygon/queue"
	log "github.com/sirupsen/logrus"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	absConfigPath := ""
	absEnvPath := ""
	if len(os.Args) > 1 {
		absConfigPath, _ = filepath.Abs(os.Args[1])
	}
	if len(os.Args) > 2 {
		absEnvPath, _ = filepath.Abs(os.Args[2])
	}

	app.InitConfig(absConfigPath, absEnvPath)
	app.InitLogger()

	app.InitDB()

	client.Client.ValidateNetwork()

	chainID, ok := new(big.Int).SetString(app.Config.Ethereum.ChainID, 10)
	if !ok {
		log.Fatal("[MAIN] Invalid chain id: ", app.Config.Ethereum.ChainID)
	}

	ethClient, err := client.NewClient()
	if err != nil {
		log.Fatal("[MAIN] Error initializing ethereum client: ", err)
	}

	editions, err := contract.NewEditions(
		common.HexToAddress(app.Config.Ethereum.EditionContractAddress),
		ethClient.GetClient(),
		chainID,
	)
	if err != nil {
		log.Fatal("[MAIN] Error initializing editions contract: ", err)
	}

	pubsubClient, err := pubsub.NewClient(context.Background(), app.Config.PubSub.ProjectId)
	if err != nil {
		log.Fatal("[MAIN] Error initializing pubsub client: ", err)
	}
	producer := queue.NewProducer(pubsubClient)

	proc := processor.NewProcessor(editions, producer)

	var wg sync.WaitGroup
	services := createServices(&wg, proc, producer)

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}

	// Gracefully shut down server
	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Gracefully shutting down server...")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()
	app.DB.Disconnect()
	log.Debug("[MAIN] Server gracefully stopped")
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}
