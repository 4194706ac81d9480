package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// ModelConfig holds the default Black-Scholes parameters used when a
// request or CLI invocation leaves them out.
type ModelConfig struct {
	Spot       float64 `yaml:"spot"`
	Strike     float64 `yaml:"strike"`
	Rate       float64 `yaml:"rate"`
	Volatility float64 `yaml:"volatility"`
	Horizon    float64 `yaml:"horizon"`
}

// SimulationConfig holds the default ensemble shape.
type SimulationConfig struct {
	PathCount int `yaml:"path_count"`
	StepCount int `yaml:"step_count"`
}

// MarketDataConfig wires the optional live-data collaborators.
type MarketDataConfig struct {
	Enabled         bool   `yaml:"enabled"`
	QuoteSymbol     string `yaml:"quote_symbol"`
	QuoteBaseURL    string `yaml:"quote_base_url"`
	TreasuryBaseURL string `yaml:"treasury_base_url"`
}

type Config struct {
	// Server settings
	Port string

	Model      ModelConfig
	Simulation SimulationConfig
	MarketData MarketDataConfig

	// Logging settings
	Logging LoggingConfig
}

// YAMLConfig mirrors config.yaml; values present there override the
// environment-derived defaults.
type YAMLConfig struct {
	Port       string           `yaml:"port"`
	Model      ModelConfig      `yaml:"model"`
	Simulation SimulationConfig `yaml:"simulation"`
	MarketData MarketDataConfig `yaml:"market_data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

func Load() *Config {
	// A .env file is optional; missing is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Model: ModelConfig{
			Spot:       getEnvFloat("MODEL_SPOT", 100),
			Strike:     getEnvFloat("MODEL_STRIKE", 100),
			Rate:       getEnvFloat("MODEL_RATE", 0.05),
			Volatility: getEnvFloat("MODEL_VOLATILITY", 0.20),
			Horizon:    getEnvFloat("MODEL_HORIZON", 1.0),
		},
		Simulation: SimulationConfig{
			PathCount: getEnvInt("SIM_PATH_COUNT", 50),
			StepCount: getEnvInt("SIM_STEP_COUNT", 252),
		},
		MarketData: MarketDataConfig{
			Enabled:     getEnvBool("MARKET_DATA_ENABLED", false),
			QuoteSymbol: getEnv("MARKET_DATA_SYMBOL", "SPY"),
		},
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", "optionslab.log"),
		},
	}

	if yamlCfg := loadYAMLConfig(); yamlCfg != nil {
		if yamlCfg.Port != "" {
			cfg.Port = yamlCfg.Port
		}
		if yamlCfg.Model.Spot > 0 {
			cfg.Model.Spot = yamlCfg.Model.Spot
		}
		if yamlCfg.Model.Strike > 0 {
			cfg.Model.Strike = yamlCfg.Model.Strike
		}
		if yamlCfg.Model.Rate != 0 {
			cfg.Model.Rate = yamlCfg.Model.Rate
		}
		if yamlCfg.Model.Volatility > 0 {
			cfg.Model.Volatility = yamlCfg.Model.Volatility
		}
		if yamlCfg.Model.Horizon > 0 {
			cfg.Model.Horizon = yamlCfg.Model.Horizon
		}
		if yamlCfg.Simulation.PathCount > 0 {
			cfg.Simulation.PathCount = yamlCfg.Simulation.PathCount
		}
		if yamlCfg.Simulation.StepCount > 0 {
			cfg.Simulation.StepCount = yamlCfg.Simulation.StepCount
		}
		if yamlCfg.MarketData.Enabled {
			cfg.MarketData.Enabled = true
		}
		if yamlCfg.MarketData.QuoteSymbol != "" {
			cfg.MarketData.QuoteSymbol = yamlCfg.MarketData.QuoteSymbol
		}
		if yamlCfg.MarketData.QuoteBaseURL != "" {
			cfg.MarketData.QuoteBaseURL = yamlCfg.MarketData.QuoteBaseURL
		}
		if yamlCfg.MarketData.TreasuryBaseURL != "" {
			cfg.MarketData.TreasuryBaseURL = yamlCfg.MarketData.TreasuryBaseURL
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}
	}

	return cfg
}

func loadYAMLConfig() *YAMLConfig {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		// Could not read config.yaml - silently return nil
		return nil
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		// Could not parse config.yaml - silently return nil
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
