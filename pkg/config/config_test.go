package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-graph/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "facturas-graph", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sequence", cfg.Store.IDStrategy)
	assert.Empty(t, cfg.Store.SeedFile)
	assert.False(t, cfg.Graph.Memoize)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestFromViper_Sobrescritos(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("HTTP_PORT", "8081")
	v.Set("ID_STRATEGY", "UUID")
	v.Set("GRAPH_MEMOIZE", "true")
	v.Set("METRICS_ENABLED", false)
	v.Set("LOG_LEVEL", "debug")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "uuid", cfg.Store.IDStrategy)
	assert.True(t, cfg.Graph.Memoize)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.IsProduction())
}

func TestFromViper_EstrategiaInvalida(t *testing.T) {
	v := viper.New()
	v.Set("ID_STRATEGY", "count")
	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_PuertoFueraDeRango(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", 70000)
	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_NivelDeLogInvalido(t *testing.T) {
	v := viper.New()
	v.Set("LOG_LEVEL", "verbose")
	_, err := config.FromViper(v)
	assert.Error(t, err)
}
