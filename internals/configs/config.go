package configs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string

	// School identity, read once from env. One deployment serves one school.
	SchoolRBD     string
	SchoolName    string
	SchoolPhone   string
	SchoolEmail   string
	SchoolAddress string
	SchoolWebsite string

	// SchoolInstitutionType selects which catalog slices apply. Kept as a
	// plain string here; callers validate against the catalog.
	SchoolInstitutionType string

	// TrustedProxies is the allow-list for X-Forwarded-For. Defaults to
	// loopback so forwarded headers from arbitrary peers are ignored.
	TrustedProxies []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] No .env file found, using system ENV")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	SchoolRBD = GetEnv("SCHOOL_RBD")
	SchoolName = GetEnv("SCHOOL_NAME", "Establecimiento Educacional")
	SchoolPhone = GetEnv("SCHOOL_PHONE")
	SchoolEmail = GetEnv("SCHOOL_EMAIL")
	SchoolAddress = GetEnv("SCHOOL_ADDRESS")
	SchoolWebsite = GetEnv("SCHOOL_WEBSITE")
	SchoolInstitutionType = GetEnv("SCHOOL_INSTITUTION_TYPE", "BASIC_SCHOOL")
	TrustedProxies = ParseTrustedProxies(GetEnv("TRUSTED_PROXIES"))

	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("[ERROR] JWT_REFRESH_SECRET is not set!")
	}
	if SchoolRBD == "" {
		log.Println("[WARN] SCHOOL_RBD is not set; exported documents will miss the RBD line")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// ParseTrustedProxies splits a comma-separated list of proxy IPs/CIDRs.
// An empty value yields loopback only.
func ParseTrustedProxies(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"127.0.0.1", "::1"}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
