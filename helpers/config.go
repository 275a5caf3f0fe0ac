package helpers

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xhit/go-str2duration/v2"
)

const (
	ProviderBinance = "binance"
	ProviderPaper   = "paper"
)

type Config struct {
	Pair       string
	Provider   string
	Levels     int
	Refresh    time.Duration
	Saturation float64
	Padding    int
	Headline   string
	Listen     string

	Algo                string
	AlgoSpreadThreshold float64
	AlgoPriceThreshold  float64

	BinanceAPIKey    string
	BinanceAPISecret string

	LogFile        string
	LogLevel       string
	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string
}

func DefaultConfig() Config {
	return Config{
		Pair:       "BTCUSDT",
		Provider:   ProviderBinance,
		Levels:     10,
		Refresh:    time.Second,
		Saturation: 5000,
		Padding:    60,
		Headline:   "My Trading Algo",
		Listen:     ":8080",

		AlgoSpreadThreshold: 5,
		AlgoPriceThreshold:  3,

		LogFile:    "depthview.log",
		LogLevel:   "info",
	}
}

// LoadConfig reads confFile into the environment when it exists and builds the configuration
// from the environment on top of the defaults. Variables already set in the process win over
// the file.
func LoadConfig(confFile string) (Config, error) {
	if confFile != "" {
		if err := godotenv.Load(confFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", confFile, err)
		}
	}

	config := DefaultConfig()
	var err error

	if v := os.Getenv("pair"); v != "" {
		config.Pair = v
	}
	if v := os.Getenv("provider"); v != "" {
		config.Provider = v
	}
	if v := os.Getenv("levels"); v != "" {
		if config.Levels, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("error parsing levels: %w", err)
		}
	}
	if v := os.Getenv("refresh"); v != "" {
		if config.Refresh, err = ParseInterval(v); err != nil {
			return Config{}, err
		}
	}
	if v := os.Getenv("saturation"); v != "" {
		if config.Saturation, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("error parsing saturation: %w", err)
		}
	}
	if v := os.Getenv("padding"); v != "" {
		if config.Padding, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("error parsing padding: %w", err)
		}
	}
	if v := os.Getenv("headline"); v != "" {
		config.Headline = v
	}
	if v := os.Getenv("listen"); v != "" {
		config.Listen = v
	}

	config.Algo = os.Getenv("algo")
	if v := os.Getenv("algoSpreadThreshold"); v != "" {
		if config.AlgoSpreadThreshold, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("error parsing algoSpreadThreshold: %w", err)
		}
	}
	if v := os.Getenv("algoPriceThreshold"); v != "" {
		if config.AlgoPriceThreshold, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("error parsing algoPriceThreshold: %w", err)
		}
	}

	config.BinanceAPIKey = os.Getenv("binanceAPIKey")
	config.BinanceAPISecret = os.Getenv("binanceAPISecret")

	if v := os.Getenv("logFile"); v != "" {
		config.LogFile = v
	}
	if v := os.Getenv("logLevel"); v != "" {
		config.LogLevel = v
	}
	config.TelegramOutput, _ = strconv.ParseBool(os.Getenv("telegramOutput"))
	config.TelegramToken = os.Getenv("telegramToken")
	config.TelegramChatId = os.Getenv("telegramChatId")

	return config, nil
}

// ParseInterval accepts Go durations plus day and week units ("1d", "1w2h").
func ParseInterval(s string) (time.Duration, error) {
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("error parsing interval %q: %w", s, err)
	}
	return d, nil
}

func (c Config) Validate() error {
	switch c.Levels {
	case 5, 10, 20:
	default:
		return fmt.Errorf("invalid levels %d: binance partial depth supports 5, 10 or 20", c.Levels)
	}
	if c.Saturation <= 0 {
		return fmt.Errorf("invalid saturation %v: must be positive", c.Saturation)
	}
	if c.Padding < 0 {
		return fmt.Errorf("invalid padding %d: must not be negative", c.Padding)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("invalid refresh %v: must be positive", c.Refresh)
	}
	switch c.Provider {
	case ProviderBinance, ProviderPaper:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.AlgoSpreadThreshold < 0 || c.AlgoPriceThreshold < 0 {
		return fmt.Errorf("invalid algo thresholds %v/%v: must not be negative",
			c.AlgoSpreadThreshold, c.AlgoPriceThreshold)
	}
	if strings.TrimSpace(c.Pair) == "" {
		return fmt.Errorf("pair must be set")
	}
	return nil
}

// Symbol is the pair in exchange notation, "btc-usdt" becomes "BTCUSDT".
func (c Config) Symbol() string {
	return strings.ToUpper(strings.ReplaceAll(c.Pair, "-", ""))
}
