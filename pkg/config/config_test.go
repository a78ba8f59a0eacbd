package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConfig_DSN_EscapaCaracteresEspeciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "stock_management",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "/stock_management")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:w/rd", "la contraseña debe ir URL-encoded")
}

func TestDBConfig_ConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/app?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@db:5432/app?sslmode=require", cfg.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 5000}
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestRedisConfig_Enabled(t *testing.T) {
	assert.False(t, RedisConfig{}.Enabled())
	assert.True(t, RedisConfig{Addr: "localhost:6379"}.Enabled())
}
