package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg 는 로드된 전체 애플리케이션 설정을 담는 전역 변수입니다
var Cfg *Config

// Config 구조체는 config.yaml 파일의 구조와 1:1로 대응합니다
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Kakao    KakaoConfig    `mapstructure:"kakao"`
	Search   SearchConfig   `mapstructure:"search"`
	Meeting  MeetingConfig  `mapstructure:"meeting"`
}

// ServerConfig 는 HTTP 서버 관련 설정입니다
type ServerConfig struct {
	Mode    string     `mapstructure:"mode"`
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig 는 CORS 관련 설정입니다
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 는 영속 저장소와 캐시 관련 설정입니다
type DatabaseConfig struct {
	// Driver 는 "sqlite" 또는 "postgres" 중 하나입니다
	Driver   string         `mapstructure:"driver"`
	Sqlite   SqliteConfig   `mapstructure:"sqlite"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// SqliteConfig 는 SQLite 파일 경로 설정입니다
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// PostgresConfig 는 PostgreSQL 접속 설정입니다
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig 는 Redis 접속 설정입니다
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// KakaoConfig 는 카카오 로컬 API 클라이언트 설정입니다
type KakaoConfig struct {
	BaseURL    string `mapstructure:"baseUrl"`
	RestAPIKey string `mapstructure:"restApiKey"`
	TimeoutMs  int    `mapstructure:"timeoutMs"`
}

// Timeout 은 외부 검색 호출 한 건에 적용할 타임아웃을 반환합니다
func (k KakaoConfig) Timeout() time.Duration {
	if k.TimeoutMs <= 0 {
		return 3 * time.Second
	}
	return time.Duration(k.TimeoutMs) * time.Millisecond
}

// SearchConfig 는 장소 검색 파이프라인의 동작 파라미터입니다
type SearchConfig struct {
	// MaxKeywords 는 한 번의 검색에서 실행할 키워드 질의 수의 상한입니다
	MaxKeywords int `mapstructure:"maxKeywords"`
	// MaxResults 는 키워드 질의 하나가 가져올 장소 수의 상한입니다
	MaxResults int `mapstructure:"maxResults"`
	// CacheTTLMinutes 는 검색 결과 캐시의 유효 시간입니다
	CacheTTLMinutes int `mapstructure:"cacheTtlMinutes"`
}

// CacheTTL 은 검색 결과 캐시 TTL을 반환합니다
func (s SearchConfig) CacheTTL() time.Duration {
	if s.CacheTTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(s.CacheTTLMinutes) * time.Minute
}

// MeetingConfig 는 모임 보존 정책 설정입니다
type MeetingConfig struct {
	// RetentionHours 가 지난 모임은 정리 작업의 삭제 대상이 됩니다
	RetentionHours int `mapstructure:"retentionHours"`
}

// Retention 은 모임 보존 기간을 반환합니다
func (m MeetingConfig) Retention() time.Duration {
	if m.RetentionHours <= 0 {
		return 72 * time.Hour
	}
	return time.Duration(m.RetentionHours) * time.Hour
}

// LoadConfig 는 config.yaml 을 찾아 로드하고 전역 Cfg에 반영합니다
// 환경 변수(예: DATABASE_REDIS_ADDRESS)로 개별 항목을 덮어쓸 수 있습니다
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	Cfg = &cfg
	return Cfg, nil
}
