package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultMinRadiusMeters    = 100.0
	defaultRadiusMiles        = 1.0
	defaultCooldownWindow     = 5 * time.Minute
	defaultEventRetryInterval = 500 * time.Millisecond
	defaultEventRetryTimeout  = 3 * time.Second
	defaultSQLitePath         = "venuealert.db"
	defaultLocationRateLimit  = 2.0
	defaultLocationRateBurst  = 10
	defaultWorkerPort         = 8081
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// LocationRateLimit is the sustained number of location fixes accepted per second per client
		LocationRateLimit float64 `json:"locationRateLimit" yaml:"locationRateLimit"`
		LocationRateBurst int     `json:"locationRateBurst" yaml:"locationRateBurst"`
	} `json:"http" yaml:"http"`

	// Worker configures the geo worker process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Storage selects the durable key-value backend shared by the API and the worker
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Geofencing configuration for the geofence coordinator and region event handling
	Geofencing *GeofencingConfig `json:"geofencing" yaml:"geofencing"`

	// Firebase configuration for notification delivery
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Notification selects the local notification provider
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for region event transport
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WorkerConfig defines the geo worker HTTP endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// StorageConfig defines the durable key-value store
type StorageConfig struct {
	// Driver is one of "sqlite", "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is the database file used by the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
}

// GeofencingConfig defines the geofencing core tunables
type GeofencingConfig struct {
	// Smallest radius in meters the region monitor will register
	MinRadiusMeters float64 `json:"minRadiusMeters" yaml:"minRadiusMeters"`

	// Alert radius used before the user picks one
	DefaultRadiusMiles float64 `json:"defaultRadiusMiles" yaml:"defaultRadiusMiles"`

	// Minimum time between two notifications for the same geofence
	CooldownWindow time.Duration `json:"cooldownWindow" yaml:"cooldownWindow"`

	// Poll interval while waiting for persisted geofences in the worker
	EventRetryInterval time.Duration `json:"eventRetryInterval" yaml:"eventRetryInterval"`

	// Upper bound on the total wait for persisted geofences in the worker
	EventRetryTimeout time.Duration `json:"eventRetryTimeout" yaml:"eventRetryTimeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// DeviceToken is the FCM registration token of the device that owns the geofences
	DeviceToken string `json:"deviceToken" yaml:"deviceToken"`
}

// NotificationConfig defines how local notifications are delivered
type NotificationConfig struct {
	// Provider is "firebase" or "log"
	Provider string `json:"provider" yaml:"provider"`
}

// PubSubConfig defines Pub/Sub configuration for region event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the geo worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// GEOFENCING_COOLDOWNWINDOW -> geofencing.cooldownWindow
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills every optional section that was left out of the yaml file.
func ApplyDefaults(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.Driver) == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if strings.TrimSpace(cfg.Storage.SQLitePath) == "" {
		cfg.Storage.SQLitePath = defaultSQLitePath
	}

	if cfg.Geofencing == nil {
		cfg.Geofencing = &GeofencingConfig{}
	}
	geo := cfg.Geofencing
	if geo.MinRadiusMeters <= 0 {
		geo.MinRadiusMeters = defaultMinRadiusMeters
	}
	if geo.DefaultRadiusMiles <= 0 {
		geo.DefaultRadiusMiles = defaultRadiusMiles
	}
	if geo.CooldownWindow <= 0 {
		geo.CooldownWindow = defaultCooldownWindow
	}
	if geo.EventRetryInterval <= 0 {
		geo.EventRetryInterval = defaultEventRetryInterval
	}
	if geo.EventRetryTimeout <= 0 {
		geo.EventRetryTimeout = defaultEventRetryTimeout
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if strings.TrimSpace(cfg.Notification.Provider) == "" {
		cfg.Notification.Provider = "log"
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}

	if cfg.HTTP.LocationRateLimit <= 0 {
		cfg.HTTP.LocationRateLimit = defaultLocationRateLimit
	}
	if cfg.HTTP.LocationRateBurst <= 0 {
		cfg.HTTP.LocationRateBurst = defaultLocationRateBurst
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
