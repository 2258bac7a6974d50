// Package config loads the application configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

const (
	// StoreProviderFirestore selects the Cloud Firestore state store.
	StoreProviderFirestore = "firestore"
	// StoreProviderMemory selects the in-memory state store (development/tests).
	StoreProviderMemory = "memory"
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
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Store configures the remote device/PIN document store.
	Store *StoreConfig `json:"store" yaml:"store"`

	// Firebase configures the Firebase project used for Firestore, ID token
	// verification and push notifications.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Access configures credential and unlock behaviour.
	Access *AccessConfig `json:"access" yaml:"access"`

	// Biometric configures the platform biometric capability.
	Biometric *BiometricConfig `json:"biometric" yaml:"biometric"`

	// Notifier configures how device change alerts are delivered.
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects and scopes the document store backend.
type StoreConfig struct {
	// Provider is "firestore" or "memory".
	Provider string `json:"provider" yaml:"provider"`

	// DoorDocument is the path of the shared door document.
	DoorDocument string `json:"doorDocument" yaml:"doorDocument"`

	// DevicesCollection is the path of the secondary devices collection.
	DevicesCollection string `json:"devicesCollection" yaml:"devicesCollection"`

	// PinsCollection is the path of the per-user PIN collection.
	PinsCollection string `json:"pinsCollection" yaml:"pinsCollection"`
}

// FirebaseConfig defines Firebase project credentials.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AccessConfig defines credential and unlock limits.
type AccessConfig struct {
	// MaxPins is the per-user PIN quota.
	MaxPins int `json:"maxPins" yaml:"maxPins"`

	// MinPinLength and MaxPinLength bound the accepted PIN code length.
	MinPinLength int `json:"minPinLength" yaml:"minPinLength"`
	MaxPinLength int `json:"maxPinLength" yaml:"maxPinLength"`

	// MaxPinAttempts is the number of consecutive failed PIN entries allowed
	// within a single unlock session before it is abandoned.
	MaxPinAttempts int `json:"maxPinAttempts" yaml:"maxPinAttempts"`
}

// BiometricConfig defines the biometric capability provider.
type BiometricConfig struct {
	// Provider is "none" or "simulator".
	Provider string `json:"provider" yaml:"provider"`

	// SimulatorOutcome forces the simulator result: "success", "failure" or
	// "cancelled". Development and test environments only.
	SimulatorOutcome string `json:"simulatorOutcome" yaml:"simulatorOutcome"`
}

// NotifierConfig defines the change alert delivery provider.
type NotifierConfig struct {
	// Provider is "local" (log only) or "fcm".
	Provider string `json:"provider" yaml:"provider"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: STORE_DOORDOCUMENT -> store.doorDocument (not store.doordocument)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyAccessDefaults(cfg)

	return cfg, nil
}

// applyAccessDefaults fills in the product defaults for unset access limits.
func applyAccessDefaults(cfg *Config) {
	if cfg.Access == nil {
		cfg.Access = &AccessConfig{}
	}
	if cfg.Access.MaxPins == 0 {
		cfg.Access.MaxPins = 10
	}
	if cfg.Access.MinPinLength == 0 {
		cfg.Access.MinPinLength = 4
	}
	if cfg.Access.MaxPinLength == 0 {
		cfg.Access.MaxPinLength = 8
	}
	if cfg.Access.MaxPinAttempts == 0 {
		cfg.Access.MaxPinAttempts = 5
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
