package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"luckycat.backend/pkg/redis"
)

func withSeams(t *testing.T) {
	t.Helper()
	origDotenv, origOpenDB, origRedis, origRun := loadDotenv, openDB, newRedis, runServer
	t.Cleanup(func() {
		loadDotenv, openDB, newRedis, runServer = origDotenv, origOpenDB, origRedis, origRun
	})
}

func TestRunMainProcess(t *testing.T) {
	withSeams(t)

	loadDotenv = func(...string) error { return errors.New("no .env") }
	newRedis = func(url, password string) (*redis.Client, error) {
		return nil, errors.New("redis down")
	}
	openDB = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}

	var servedPort string
	runServer = func(r *gin.Engine, port string) error {
		servedPort = port
		require.NotNil(t, r)
		return nil
	}

	require.NoError(t, runMainProcess())
	assert.NotEmpty(t, servedPort)
}

func TestRunMainProcess_DatabaseOpenFails(t *testing.T) {
	withSeams(t)

	loadDotenv = func(...string) error { return nil }
	newRedis = func(url, password string) (*redis.Client, error) {
		return nil, errors.New("redis down")
	}
	openDB = func(dsn string) (*gorm.DB, error) {
		return nil, errors.New("connection refused")
	}

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestRunMainProcess_ServerError(t *testing.T) {
	withSeams(t)

	loadDotenv = func(...string) error { return nil }
	newRedis = func(url, password string) (*redis.Client, error) {
		return nil, errors.New("redis down")
	}
	openDB = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
	runServer = func(r *gin.Engine, port string) error {
		return errors.New("listen tcp: address already in use")
	}

	assert.Error(t, runMainProcess())
}
