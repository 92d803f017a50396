package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Storage     StorageConfig   `mapstructure:"storage"`
	OCR         OCRConfig       `mapstructure:"ocr"`
	AI          AIConfig        `mapstructure:"ai"`
	Suggest     SuggestConfig   `mapstructure:"suggest"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
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

// StorageConfig 鍵值儲存設定（Redis）
type StorageConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// OCRConfig OCR 協作方設定
type OCRConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AIConfig AI 擷取協作方設定
type AIConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// SuggestConfig 食譜推薦設定
type SuggestConfig struct {
	MaxResults int `mapstructure:"max_results"`
	// ExcludedSpiceIDs 目錄中分類錯誤、不可視為香料的 id
	// 這份清單綁定特定目錄資料，屬於資料品質修正，不可由分類重新推導
	ExcludedSpiceIDs []int `mapstructure:"excluded_spice_ids"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件，沒有 .env 時全靠環境變數與預設值
	_ = godotenv.Load()

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("storage.addr", "STORAGE_ADDR")
	viper.BindEnv("storage.password", "STORAGE_PASSWORD")
	viper.BindEnv("ocr.base_url", "OCR_BASE_URL")
	viper.BindEnv("ocr.api_key", "OCR_API_KEY")
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "AI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")
	viper.BindEnv("ai.max_tokens", "MODEL_MAX_TOKENS")
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
	fmt.Println("Loading configuration", "ai_api_key:", maskAPIKey(viper.GetString("ai.api_key")), "ai_model:", viper.GetString("ai.model"))

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
	viper.SetDefault("app.name", "pantry-chef")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 儲存設定
	viper.SetDefault("storage.addr", "localhost:6379")
	viper.SetDefault("storage.db", 0)
	viper.SetDefault("storage.timeout", "5s")

	// OCR 設定
	viper.SetDefault("ocr.enabled", false)
	viper.SetDefault("ocr.timeout", "60s")

	// AI 擷取設定
	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("ai.model", "qwen/qwen2.5-vl-72b-instruct:free")
	viper.SetDefault("ai.max_tokens", 2000)
	viper.SetDefault("ai.timeout", "60s")

	// 推薦設定
	viper.SetDefault("suggest.max_results", 50)
	viper.SetDefault("suggest.excluded_spice_ids", []int{334, 679})

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 去重視窗預設
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證儲存設定
	if config.Storage.Addr == "" {
		return fmt.Errorf("storage addr is required")
	}
	if config.Storage.Timeout <= 0 {
		return fmt.Errorf("invalid storage timeout")
	}

	// 驗證推薦設定
	if config.Suggest.MaxResults <= 0 {
		return fmt.Errorf("invalid suggest max results")
	}

	// 驗證協作方設定
	if config.OCR.Enabled && config.OCR.BaseURL == "" {
		return fmt.Errorf("ocr base url is required when ocr is enabled")
	}
	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("ai api key is required when ai is enabled")
	}

	return nil
}
