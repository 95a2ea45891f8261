package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"remotefs/config"
	"remotefs/core"
	"remotefs/remote"
)

func main() {
	configPath := flag.String("config", "config.toml", "Path to config file")
	journalPath := flag.String("journal", "journal.json", "Path to transfer journal")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	endpoints := make(map[string]*remote.Endpoint, len(cfg.Endpoints))
	for name, e := range cfg.Endpoints {
		ep, err := e.Remote()
		if err != nil {
			logger.Fatal("bad endpoint", zap.String("endpoint", name), zap.Error(err))
		}
		if ep.Secret.Empty() {
			pw, err := askPassword(name)
			if err != nil {
				logger.Fatal("failed to read password", zap.String("endpoint", name), zap.Error(err))
			}
			ep.Secret = remote.NewSecretBytes(pw)
			wipe(pw)
		}
		endpoints[name] = ep
	}

	journal := core.NewJournal(*journalPath)
	if err := journal.Load(); err != nil {
		logger.Warn("failed to load journal", zap.Error(err))
	}

	client := core.NewClient()
	runner := core.NewRunner(cfg, endpoints, client, journal, logger)
	runner.Start()

	logger.Info("remotefs started", zap.Int("jobs", len(cfg.Jobs)))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	runner.Stop()
	journal.Save()
	for _, ep := range endpoints {
		ep.Secret.Wipe()
	}
}

// askPassword reads a password from the terminal without echoing it and
// returns it as bytes so the caller can wipe it after use.
func askPassword(endpoint string) ([]byte, error) {
	fmt.Printf("Password for %s: ", endpoint)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	return pw, err
}

func wipe(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
