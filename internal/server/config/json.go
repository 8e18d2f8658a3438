package config

import (
	"encoding/json"
	"os"

	"github.com/Dvesiz/Ship-Management-System/internal/flagx"
	"github.com/Dvesiz/Ship-Management-System/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both string
// values such as "12h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP  *string         `json:"endpoint_addr_http"`
	DatabaseDSN       *string         `json:"database_dsn"`
	RedisAddr         *string         `json:"redis_addr"`
	RedisPassword     *string         `json:"redis_password"`
	RedisDB           *int            `json:"redis_db"`
	SecretKey         *string         `json:"secret_key"`
	SessionTTL        *timex.Duration `json:"session_ttl"`
	SMTPHost          *string         `json:"smtp_host"`
	SMTPPort          *string         `json:"smtp_port"`
	SMTPUser          *string         `json:"smtp_user"`
	SMTPPassword      *string         `json:"smtp_password"`
	SMTPFrom          *string         `json:"smtp_from"`
	S3User            *string         `json:"s3_user"`
	S3Password        *string         `json:"s3_password"`
	S3Bucket          *string         `json:"s3_bucket"`
	S3Region          *string         `json:"s3_region"`
	S3BaseEndpoint    *string         `json:"s3_base_endpoint"`
	PublicBaseURL     *string         `json:"public_base_url"`
	TurnstileEnabled  *bool           `json:"turnstile_enabled"`
	TurnstileSecret   *string         `json:"turnstile_secret"`
	TurnstileURL      *string         `json:"turnstile_url"`
	CertSweepInterval *timex.Duration `json:"cert_sweep_interval"`
	AuditBufferSize   *int            `json:"audit_buffer_size"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. Absent JSON keys leave the corresponding
// Config fields untouched, so defaults survive a partial file. If the file
// cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.SMTPHost, c.SMTPHost)
	setString(&config.SMTPPort, c.SMTPPort)
	setString(&config.SMTPUser, c.SMTPUser)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setString(&config.SMTPFrom, c.SMTPFrom)
	setString(&config.S3User, c.S3User)
	setString(&config.S3Password, c.S3Password)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.PublicBaseURL, c.PublicBaseURL)
	setString(&config.TurnstileSecret, c.TurnstileSecret)
	setString(&config.TurnstileURL, c.TurnstileURL)

	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.TurnstileEnabled != nil {
		config.TurnstileEnabled = *c.TurnstileEnabled
	}
	if c.CertSweepInterval != nil {
		config.CertSweepInterval = c.CertSweepInterval.Duration
	}
	if c.AuditBufferSize != nil {
		config.AuditBufferSize = *c.AuditBufferSize
	}
}
