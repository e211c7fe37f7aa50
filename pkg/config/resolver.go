package config

import (
	"os"
	"strings"
)

// LookupFunc reads a single environment variable (os.LookupEnv in production)
type LookupFunc func(key string) (string, bool)

// EnvLookup reads the process environment
var EnvLookup LookupFunc = os.LookupEnv

// MapLookup serves values from a map, mostly for tests
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// SourceDefault marks a value that came from Setting.Default
const SourceDefault = "default"

// Setting is a configuration value read from an ordered list of environment
// variables. Keys are checked left to right and the first non-empty value wins.
type Setting struct {
	Name    string
	Keys    []string
	Default string
}

// Resolve returns the effective value and the key that supplied it.
// source is SourceDefault when the default applied and "" when nothing did.
func (s Setting) Resolve(lookup LookupFunc) (value, source string) {
	for _, key := range s.Keys {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), key
		}
	}
	if s.Default != "" {
		return s.Default, SourceDefault
	}
	return "", ""
}

// Hint lists the accepted variable names, for error messages
func (s Setting) Hint() string {
	return strings.Join(s.Keys, " or ")
}

// DefaultRegion applies when no region variable is set
const DefaultRegion = "ap-south-1"

// Contract download settings. The VITE_ prefixed names are shared with the
// front-end build and take precedence over the bare names.
var (
	BucketSetting = Setting{
		Name: "bucket",
		Keys: []string{"VITE_CONTRACT_S3_BUCKET", "CONTRACT_S3_BUCKET"},
	}
	KeySetting = Setting{
		Name: "key",
		Keys: []string{"VITE_CONTRACT_S3_FILENAME_BFF", "CONTRACT_S3_KEY"},
	}
	RegionSetting = Setting{
		Name:    "region",
		Keys:    []string{"VITE_CONTRACT_AWS_REGION", "AWS_REGION"},
		Default: DefaultRegion,
	}
	AccessKeySetting = Setting{
		Name: "access_key_id",
		Keys: []string{"VITE_CONTRACT_AWS_ACCESS_KEY", "CONTRACT_AWS_ACCESS_KEY"},
	}
	SecretKeySetting = Setting{
		Name: "secret_access_key",
		Keys: []string{"VITE_CONTRACT_AWS_SECRET_KEY", "CONTRACT_AWS_SECRET_KEY"},
	}
	EndpointSetting = Setting{
		Name: "endpoint",
		Keys: []string{"VITE_CONTRACT_S3_ENDPOINT", "CONTRACT_S3_ENDPOINT"},
	}
	PathStyleSetting = Setting{
		Name:    "force_path_style",
		Keys:    []string{"VITE_CONTRACT_S3_FORCE_PATH_STYLE", "CONTRACT_S3_FORCE_PATH_STYLE"},
		Default: "false",
	}
)

// ContractSettings is every setting the download resolves, in resolution order
var ContractSettings = []Setting{
	BucketSetting,
	KeySetting,
	RegionSetting,
	AccessKeySetting,
	SecretKeySetting,
	EndpointSetting,
	PathStyleSetting,
}

// settingByName finds a contract setting by its schema property name
func settingByName(name string) (Setting, bool) {
	for _, s := range ContractSettings {
		if s.Name == name {
			return s, true
		}
	}
	return Setting{}, false
}
