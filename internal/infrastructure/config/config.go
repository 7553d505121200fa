package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Vision      VisionConfig    `mapstructure:"vision"`
	Providers   ProvidersConfig `mapstructure:"providers"`
	Session     SessionConfig   `mapstructure:"session"`
	Cache       CacheConfig     `mapstructure:"cache"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Image       ImageConfig     `mapstructure:"image"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// VisionConfig 視覺辨識服務配置（Roboflow serverless）
type VisionConfig struct {
	FoodModelURL       string        `mapstructure:"food_model_url"`
	FoodAPIKey         string        `mapstructure:"food_api_key"`
	IngredientModelURL string        `mapstructure:"ingredient_model_url"`
	IngredientAPIKey   string        `mapstructure:"ingredient_api_key"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// ProvidersConfig 外部食譜供應商鏈配置
type ProvidersConfig struct {
	Spoonacular SpoonacularConfig `mapstructure:"spoonacular"`
	MealDB      MealDBConfig      `mapstructure:"mealdb"`
}

// SpoonacularConfig 主要供應商：結構化資料豐富，但有每日額度
type SpoonacularConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	DailyLimit int           `mapstructure:"daily_limit"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// MealDBConfig 次要供應商：免費無額度，資料較陽春
type MealDBConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig 食材工作階段配置
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// CacheConfig 食譜查詢快取配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"` // memory 或 redis
	RedisAddr       string        `mapstructure:"redis_addr"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// ImageConfig 圖片配置
type ImageConfig struct {
	MaxSizeBytes int64 `mapstructure:"max_size_bytes"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件，缺少時改用環境變數與預設值
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("vision.food_api_key", "ROBOFLOW_FOOD_API_KEY")
	viper.BindEnv("vision.ingredient_api_key", "ROBOFLOW_INGREDIENT_API_KEY")
	viper.BindEnv("providers.spoonacular.api_key", "SPOONACULAR_API_KEY")
	viper.BindEnv("providers.spoonacular.enabled", "SPOONACULAR_ENABLED")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis_addr", "REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration",
		"spoonacular_api_key:", maskAPIKey(viper.GetString("providers.spoonacular.api_key")),
		"cache_backend:", viper.GetString("cache.backend"))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "pantry-scan")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 視覺辨識設定
	viper.SetDefault("vision.food_model_url", "https://serverless.roboflow.com/filipino-food-datasets-kd7d6/1")
	viper.SetDefault("vision.ingredient_model_url", "https://serverless.roboflow.com/ingredients-detector-tqvxr/3")
	viper.SetDefault("vision.timeout", "30s")

	// 供應商設定
	viper.SetDefault("providers.spoonacular.enabled", true)
	viper.SetDefault("providers.spoonacular.base_url", "https://api.spoonacular.com/recipes")
	viper.SetDefault("providers.spoonacular.daily_limit", 150)
	viper.SetDefault("providers.spoonacular.timeout", "10s")
	viper.SetDefault("providers.mealdb.base_url", "https://www.themealdb.com/api/json/v1/1")
	viper.SetDefault("providers.mealdb.timeout", "10s")

	// 工作階段設定
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.sweep_interval", "10m")

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.redis_addr", "localhost:6379")
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 圖片設定
	viper.SetDefault("image.max_size_bytes", 10*1024*1024) // 10MB

	// 新增 dedup window 預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證工作階段設定
	if config.Session.TTL <= 0 {
		return fmt.Errorf("invalid session ttl")
	}
	if config.Session.SweepInterval <= 0 {
		return fmt.Errorf("invalid session sweep interval")
	}

	// 驗證供應商設定
	if config.Providers.Spoonacular.Enabled && config.Providers.Spoonacular.DailyLimit <= 0 {
		return fmt.Errorf("invalid spoonacular daily limit")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		if config.Cache.Backend != "memory" && config.Cache.Backend != "redis" {
			return fmt.Errorf("invalid cache backend: %s", config.Cache.Backend)
		}
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	return nil
}
