package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        int
	DatabaseURL string
	DBMaxOpen   int

	// SoftDelete enables the applications.deleted_at contract.
	// Fixed per deployment, never probed at request time.
	SoftDelete bool

	S3Endpoint      string
	S3Bucket        string
	S3AccessKeyID   string
	S3SecretKey     string
	CDNBaseURL      string
	GatewayURL      string
	PaymentProvider string
	ShopID          string
	GatewaySecret   string
	ReturnURL       string
	WebhookSecret   string
}

const (
	defaultPort       = 3318
	defaultMaxOpen    = 10
	defaultS3Endpoint = "bucket.poehali.dev"
	defaultS3Bucket   = "files"
	defaultCDNBase    = "https://cdn.poehali.dev/projects"
	defaultGateway    = "https://api.yookassa.ru/v3"
	defaultReturnURL  = "https://preview--talent-studio-project.poehali.dev/?section=home"
)

// ParseFlags reads flags first, then falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var softDelete string

	fs := flag.NewFlagSet("talent-studio", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.IntVar(&cfg.DBMaxOpen, "db-max-open", 0, "Max open database connections")
	fs.StringVar(&softDelete, "soft-delete", "", "Enable soft delete on applications (true/false)")
	fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", "", "S3-compatible endpoint host")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", "", "Bucket for uploaded files")
	fs.StringVar(&cfg.CDNBaseURL, "cdn-base", "", "Public CDN base URL")
	fs.StringVar(&cfg.GatewayURL, "gateway-url", "", "Payment gateway API URL")
	fs.StringVar(&cfg.PaymentProvider, "payment-provider", "", "Payment provider (yookassa or stub)")
	fs.StringVar(&cfg.ReturnURL, "return-url", "", "Redirect URL after checkout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DBMaxOpen == 0 {
		if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return Config{}, errors.New("invalid DB_MAX_OPEN_CONNS env variable")
			}
			cfg.DBMaxOpen = n
		} else {
			cfg.DBMaxOpen = defaultMaxOpen
		}
	}

	if softDelete == "" {
		softDelete = os.Getenv("APPLICATIONS_SOFT_DELETE")
	}
	if softDelete == "" {
		cfg.SoftDelete = true
	} else {
		v, err := strconv.ParseBool(softDelete)
		if err != nil {
			return Config{}, errors.New("invalid soft delete flag: " + softDelete)
		}
		cfg.SoftDelete = v
	}

	cfg.S3Endpoint = firstNonEmpty(cfg.S3Endpoint, os.Getenv("S3_ENDPOINT"), defaultS3Endpoint)
	cfg.S3Bucket = firstNonEmpty(cfg.S3Bucket, os.Getenv("S3_BUCKET"), defaultS3Bucket)
	cfg.CDNBaseURL = strings.TrimRight(firstNonEmpty(cfg.CDNBaseURL, os.Getenv("CDN_BASE_URL"), defaultCDNBase), "/")
	cfg.GatewayURL = strings.TrimRight(firstNonEmpty(cfg.GatewayURL, os.Getenv("YOOKASSA_API_URL"), defaultGateway), "/")
	cfg.PaymentProvider = firstNonEmpty(cfg.PaymentProvider, os.Getenv("PAYMENT_PROVIDER"), "yookassa")
	cfg.ReturnURL = firstNonEmpty(cfg.ReturnURL, os.Getenv("PAYMENT_RETURN_URL"), defaultReturnURL)

	// Secrets - env only. Handlers that need them fail at request time.
	cfg.S3AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.S3SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.ShopID = os.Getenv("YOOKASSA_SHOP_ID")
	cfg.GatewaySecret = os.Getenv("YOOKASSA_SECRET_KEY")
	cfg.WebhookSecret = os.Getenv("PAYMENT_WEBHOOK_SECRET")

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
