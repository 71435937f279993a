package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あればDSNとして最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト
	PostgresPort     string // DBポート
	PostgresSSLMode  string

	SessionSecret string        // セッションCookie署名シークレット
	SessionTTL    time.Duration // ログインセッションの有効期間
	ModifyWindow  time.Duration // 注文後にキャンセル/変更できる時間

	GoEnv        string // dev/production
	CookieSecure bool

	// 初期スタッフのパスワード（起動時にbcryptでハッシュして保存）
	AdminPassword   string
	KitchenPassword string
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		GoEnv: getenv("GO_ENV", "dev"),

		AdminPassword:   getenv("ADMIN_PASSWORD", "admin123"),
		KitchenPassword: getenv("KITCHEN_PASSWORD", "kitchen123"),
	}

	//必須チェック
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}

	//キャンセル可能時間（秒）
	windowSec, err := atoiDefault("MODIFY_WINDOW_SECONDS", 60)
	if err != nil {
		return Config{}, err
	}
	if windowSec <= 0 {
		return Config{}, fmt.Errorf("MODIFY_WINDOW_SECONDS must be positive")
	}
	cfg.ModifyWindow = time.Duration(windowSec) * time.Second

	//セッション有効期間（時間）
	ttlHours, err := atoiDefault("SESSION_TTL_HOURS", 6)
	if err != nil {
		return Config{}, err
	}
	if ttlHours <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	cfg.CookieSecure = envBool("COOKIE_SECURE", cfg.GoEnv == "production")

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
