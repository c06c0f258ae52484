package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore/entities"
)

func TestMySQLIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping MySQL container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := tcmysql.Run(ctx, "mysql:8.0",
		tcmysql.WithDatabase("huntlog"),
		tcmysql.WithUsername("huntlog"),
		tcmysql.WithPassword("huntlog"),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "3306/tcp")
	require.NoError(t, err)

	store, err := OpenMySQL(&conf.MySQLSettings{
		Enabled:  true,
		Username: "huntlog",
		Password: "huntlog",
		Host:     host,
		Port:     port.Port(),
		Database: "huntlog",
	}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, DialectMySQL, store.Dialect())
	require.NoError(t, store.Ping(ctx))

	owner := entities.Account{Username: "jaeger", PasswordHash: "x", Active: true}
	require.NoError(t, store.DB().Create(&owner).Error)
	area := entities.Area{AccountID: owner.ID, Name: "Hochwald"}
	require.NoError(t, store.DB().Create(&area).Error)
	require.NoError(t, store.DB().Create(&entities.Stand{
		AccountID: owner.ID, AreaID: area.ID, Name: "Kanzel 1",
		Kind: entities.StandLadder, Condition: entities.ConditionGood, Active: true,
	}).Error)

	// The declared RESTRICT constraint holds at the engine level.
	err = store.DB().Delete(&entities.Area{}, area.ID).Error
	require.Error(t, err)
}
