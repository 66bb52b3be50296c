package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wspackager/pkg/errors"
	"github.com/arthur-debert/wspackager/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration.
// Sections are separated by a double underscore:
// WSPACKAGER_BUILD__DESTINATION=dist/{name}.tar.gz
const EnvPrefix = "WSPACKAGER_"

// ProjectFiles are the project file names looked up in the working root,
// in order. The first one found is used.
var ProjectFiles = []string{
	".wspackager.toml",
	"wspackager.toml",
	".wspackager.yaml",
	"wspackager.yaml",
}

// Load builds the configuration for the working root. overrides holds
// dotted keys (e.g. "build.quiet") set from the command line.
func Load(root string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project file
	source, found := ProjectFile(root)
	if found {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", source).
				WithDetail("path", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded project config")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if found {
		cfg.Source = source
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ProjectFile returns the first project file present in root
func ProjectFile(root string) (string, bool) {
	for _, name := range ProjectFiles {
		p := filepath.Join(root, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return kyaml.Parser()
	}
	return toml.Parser()
}

// envKey maps WSPACKAGER_BUILD__COMPRESSION_LEVEL to build.compression_level
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Package.Manifest) == "" {
		return errors.New(errors.ErrInvalidInput, "package.manifest must not be empty")
	}
	if cfg.Build.CompressionLevel < -2 || cfg.Build.CompressionLevel > 9 {
		return errors.Newf(errors.ErrInvalidInput, "build.compression_level must be between -2 and 9, got %d", cfg.Build.CompressionLevel).
			WithDetail("compression_level", cfg.Build.CompressionLevel)
	}
	for i, decl := range cfg.Files {
		if strings.TrimSpace(decl.Path) == "" {
			return errors.Newf(errors.ErrInvalidInput, "files[%d] has an empty path", i)
		}
	}
	return nil
}
