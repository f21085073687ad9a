package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/2beens/gymrank/internal"
	"github.com/2beens/gymrank/internal/achievements"
	"github.com/2beens/gymrank/internal/config"
	"github.com/2beens/gymrank/internal/logging"
	"github.com/2beens/gymrank/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logFileName := ""
	if cfg.LogsPath != "" {
		logsDirExists, err := pkg.PathExists(cfg.LogsPath, true)
		if err != nil {
			log.Fatalf("check logs dir: %s", err)
		}
		if !logsDirExists {
			if err := os.MkdirAll(cfg.LogsPath, 0o755); err != nil {
				log.Fatalf("create logs dir: %s", err)
			}
		}
		logFileName = filepath.Join(cfg.LogsPath, "gymrank")
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      logFileName,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        cfg.Secrets.SentryDSN,
		SentryServerName: "gymrank-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	if cfg.Secrets.APISecretHash == "" {
		log.Errorf("api secret hash not set, use GYMRANK_API_SECRET_HASH, all writes will be rejected")
	}
	if cfg.Secrets.RedisPassword == "" {
		log.Warnln("redis password not set, use GYMRANK_REDIS_PASS")
	}
	if cfg.Secrets.HoneycombEnabled {
		if cfg.Secrets.HoneycombAPIKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	// a broken catalog must never reach the evaluator
	catalog, err := achievements.DefaultCatalog()
	if err != nil {
		log.Fatalf("achievements catalog: %s", err)
	}
	log.Debugf("achievements catalog loaded: %d definitions", catalog.Len())

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:      cfg,
			Catalog:     catalog,
			VersionInfo: versionInfo,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
