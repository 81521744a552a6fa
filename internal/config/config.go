package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	commoncfg "github.com/Optimus825482/minibartakip2cool-sub001/internal/common/config"
)

// Config housekeeping-planner（HTTP API）配置
type Config struct {
	HTTP struct {
		Addr            string
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
	}
	DBEnabled bool
	Database  commoncfg.DatabaseConfig
	Redis     commoncfg.RedisConfig
	Log       struct {
		Level  string
		Format string
	}
	Plan PlanConfig
	PMS  PMSConfig
	MQTT MQTTConfig
	CORS struct {
		AllowedOrigins []string
	}
}

// PlanConfig 规划相关配置
type PlanConfig struct {
	Timezone    string        // 酒店所在时区（IANA 名称）
	CacheTTL    time.Duration // 最近一次计划在 Redis 中的保留时间
	EventStream string        // 计划摘要发布的 Redis Stream
}

// PMSConfig 外部前台系统（PMS）配置，用于读取当日入住/退房记录
type PMSConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// MQTTConfig MQTT 配置（用于向手持终端推送简报）
type MQTTConfig struct {
	Enabled     bool
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string // 推送主题前缀，完整主题为 <prefix>/<staff_id>/briefing
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.HTTP.WriteTimeout = time.Duration(parseInt(getEnv("HTTP_WRITE_TIMEOUT_SECONDS", "30"), 30)) * time.Second
	cfg.HTTP.ShutdownTimeout = time.Duration(parseInt(getEnv("HTTP_SHUTDOWN_TIMEOUT_SECONDS", "5"), 5)) * time.Second

	// 数据库不可用时回退到内存仓库
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "minibar")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Plan.Timezone = getEnv("PLAN_TIMEZONE", "Europe/Nicosia")
	cfg.Plan.CacheTTL = time.Duration(parseInt(getEnv("PLAN_CACHE_TTL_SECONDS", "900"), 900)) * time.Second
	cfg.Plan.EventStream = getEnv("PLAN_EVENT_STREAM", "housekeeping:plans")

	// PMS 配置（默认禁用，使用数据库中的 misafir_kayitlari）
	cfg.PMS.Enabled = getEnv("PMS_ENABLED", "false") == "true"
	cfg.PMS.BaseURL = getEnv("PMS_BASE_URL", "")
	cfg.PMS.APIKey = getEnv("PMS_API_KEY", "")
	cfg.PMS.Timeout = time.Duration(parseInt(getEnv("PMS_TIMEOUT_SECONDS", "10"), 10)) * time.Second

	// MQTT 配置（默认禁用）
	cfg.MQTT.Enabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "housekeeping-planner")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.TopicPrefix = getEnv("MQTT_TOPIC_PREFIX", "housekeeping")

	cfg.CORS.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg
}

// Location 解析规划时区，无效时回退到 UTC
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Plan.Timezone)
	if err != nil {
		return time.UTC, err
	}
	return loc, nil
}

// CommonMQTT 转换为 common/mqtt 客户端使用的配置
func (c *Config) CommonMQTT() *commoncfg.MQTTConfig {
	return &commoncfg.MQTTConfig{
		Broker:   c.MQTT.Broker,
		ClientID: c.MQTT.ClientID,
		Username: c.MQTT.Username,
		Password: c.MQTT.Password,
		QoS:      1,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
