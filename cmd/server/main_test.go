package main

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tradedesk.backend/internal/config"
	plog "tradedesk.backend/pkg/logger"
	"tradedesk.backend/pkg/redis"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origNewSessionStore := newSessionStore
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		newSessionStore = origNewSessionStore
		runServer = origRunServer
	})

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:     "18080",
			Env:      "development",
			LogLevel: "error",
		},
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: "file:main_test?mode=memory&cache=shared",
		},
		Redis: config.RedisConfig{
			URL: "redis://localhost:6379",
		},
		JWT: config.JWTConfig{
			Secret:        "secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			SessionEncryptionKey: "0000000000000000000000000000000000000000000000000000000000000000",
			BcryptCost:           4,
		},
		Assistant: config.AssistantConfig{Timeout: time.Second},
		Jobs:      config.JobsConfig{ExpiryInterval: time.Hour},
	}
}

func sqliteDB(name string) func(config.DatabaseConfig) (*gorm.DB, error) {
	return func(config.DatabaseConfig) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)
	initRedis = func(string, string) error { return errors.New("redis down") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)
	openDB = func(config.DatabaseConfig) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database")
}

func TestRunMainProcess_SessionStoreError(t *testing.T) {
	withMainHooks(t)
	openDB = sqliteDB("main_session_err")
	newSessionStore = func(string) (*redis.SessionStore, error) { return nil, errors.New("bad session key") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session store")
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)
	openDB = sqliteDB("main_server_err")
	runServer = func(context.Context, *http.Server) error { return errors.New("listen failed") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen failed")
}

func TestRunMainProcess_SuccessPathWithSeed(t *testing.T) {
	withMainHooks(t)
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Seed.Enabled = true
		return cfg
	}
	openDB = sqliteDB("main_success")

	var addr string
	runServer = func(_ context.Context, srv *http.Server) error {
		addr = srv.Addr
		return nil
	}

	require.NoError(t, runMainProcess())
	assert.Equal(t, ":18080", addr)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop")
	}
}

func TestServe_ListenError(t *testing.T) {
	srv := &http.Server{Addr: "bad-address:-1"}
	err := serve(context.Background(), srv)
	assert.Error(t, err)
}
