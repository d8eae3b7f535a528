package config

import (
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port    string `mapstructure:"port"`
	BaseURL string `mapstructure:"baseURL"` // public site URL, used to build tracking links
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration string `mapstructure:"expiration"`
}

type AdminConfig struct {
	// Emails is a comma-separated allow-list. Only these accounts may log in.
	Emails          string `mapstructure:"emails"`
	DefaultPassword string `mapstructure:"defaultPassword"`
}

type StorageConfig struct {
	// Provider selects the prescription image host: "imgbb" or "s3".
	Provider string `mapstructure:"provider"`
}

type ImgBBConfig struct {
	APIKey   string `mapstructure:"apiKey"`
	Endpoint string `mapstructure:"endpoint"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type GeocodingConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	UserAgent string `mapstructure:"userAgent"`
}

type ContactConfig struct {
	WhatsAppNumber string `mapstructure:"whatsappNumber"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Storage   StorageConfig   `mapstructure:"storage"`
	ImgBB     ImgBBConfig     `mapstructure:"imgbb"`
	S3        S3Config        `mapstructure:"s3"`
	Geocoding GeocodingConfig `mapstructure:"geocoding"`
	Contact   ContactConfig   `mapstructure:"contact"`
}

// AdminEmails returns the normalized allow-list (lowercased, trimmed).
func (c Config) AdminEmails() []string {
	var emails []string
	for _, e := range strings.Split(c.Admin.Emails, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// LoadConfig reads configuration from an optional config.yaml and overrides
// every key with its environment variable.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.baseURL", "SITE_BASE_URL")
	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	viper.BindEnv("admin.emails", "ADMIN_EMAILS")
	viper.BindEnv("admin.defaultPassword", "ADMIN_DEFAULT_PASSWORD")
	viper.BindEnv("storage.provider", "STORAGE_PROVIDER")
	viper.BindEnv("imgbb.apiKey", "IMGBB_API_KEY")
	viper.BindEnv("imgbb.endpoint", "IMGBB_ENDPOINT")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	viper.BindEnv("geocoding.endpoint", "GEOCODING_ENDPOINT")
	viper.BindEnv("geocoding.userAgent", "GEOCODING_USER_AGENT")
	viper.BindEnv("contact.whatsappNumber", "CONTACT_WHATSAPP_NUMBER")

	// Defaults matching the production setup.
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.baseURL", "https://pharmarapide.ma")
	viper.SetDefault("mongo.dbName", "pharmarapide")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("admin.emails", "admin@pharmarapide.ma")
	viper.SetDefault("storage.provider", "imgbb")
	viper.SetDefault("imgbb.endpoint", "https://api.imgbb.com/1/upload")
	viper.SetDefault("geocoding.endpoint", "https://nominatim.openstreetmap.org/reverse")
	viper.SetDefault("geocoding.userAgent", "Pharmarapide/1.0")
	viper.SetDefault("contact.whatsappNumber", "+212619834123")

	// A missing config.yaml is fine, the env vars carry everything.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
