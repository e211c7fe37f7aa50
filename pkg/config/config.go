package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/williamokano/contract_sync/pkg/storage"
	"github.com/williamokano/contract_sync/pkg/storage/s3"
)

// ContractConfig is the resolved configuration of a contract download
type ContractConfig struct {
	Bucket          string `json:"bucket"`
	Key             string `json:"key"`
	Region          string `json:"region"`
	AccessKeyID     string `json:"-"`
	SecretAccessKey string `json:"-"`
	Endpoint        string `json:"endpoint,omitempty"`
	ForcePathStyle  bool   `json:"force_path_style"`

	// Sources maps each resolved setting name to the variable that supplied it
	Sources map[string]string `json:"-"`
}

// S3 returns the storage backend configuration
func (c *ContractConfig) S3() s3.Config {
	return s3.Config{
		Endpoint:        c.Endpoint,
		Region:          c.Region,
		Bucket:          c.Bucket,
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		ForcePathStyle:  c.ForcePathStyle,
	}
}

// ToolConfig holds settings shared by both commands. Defaults reproduce the
// fixed paths and generator the project has always used.
type ToolConfig struct {
	LogLevel        string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat       string `env:"LOG_FORMAT" env-default:"console"`
	ContractPath    string `env:"CONTRACT_PATH" env-default:"./openapi-bff.yaml"`
	SDKOutputDir    string `env:"CLIENT_SDK_DIR" env-default:"./src/client-sdk"`
	GeneratorTarget string `env:"OPENAPI_GENERATOR" env-default:"typescript-axios"`
	GeneratorCLI    string `env:"OPENAPI_GENERATOR_CLI" env-default:"npx @openapitools/openapi-generator-cli"`
}

// LoadDotEnv loads variables from .env files without overriding ones already
// set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// LoadToolConfig reads the shared tool settings from the environment
func LoadToolConfig() (*ToolConfig, error) {
	var cfg ToolConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read tool settings: %w", err)
	}
	return &cfg, nil
}

// ResolveContractConfig reads every contract setting through lookup. It does
// not validate; see LoadContractConfig.
func ResolveContractConfig(lookup LookupFunc) (*ContractConfig, error) {
	cfg := &ContractConfig{Sources: make(map[string]string)}

	values := make(map[string]string, len(ContractSettings))
	for _, s := range ContractSettings {
		v, source := s.Resolve(lookup)
		values[s.Name] = v
		if source != "" {
			cfg.Sources[s.Name] = source
		}
	}

	cfg.Bucket = values[BucketSetting.Name]
	cfg.Key = values[KeySetting.Name]
	cfg.Region = values[RegionSetting.Name]
	cfg.AccessKeyID = values[AccessKeySetting.Name]
	cfg.SecretAccessKey = values[SecretKeySetting.Name]
	cfg.Endpoint = values[EndpointSetting.Name]

	pathStyle, err := strconv.ParseBool(values[PathStyleSetting.Name])
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean, got %q",
			storage.ErrInvalidConfig, PathStyleSetting.Hint(), values[PathStyleSetting.Name])
	}
	cfg.ForcePathStyle = pathStyle

	return cfg, nil
}

// LoadContractConfig resolves and validates the contract download settings
func LoadContractConfig(lookup LookupFunc) (*ContractConfig, error) {
	cfg, err := ResolveContractConfig(lookup)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
