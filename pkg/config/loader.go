package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/shell"
	"github.com/arthur-debert/alx/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// configProvider reads path from disk, or through fsys when one is given
func configProvider(fsys types.FS, path string) koanf.Provider {
	if fsys == nil {
		return file.Provider(path)
	}
	return &fsProvider{fs: fsys, path: path}
}

type fsProvider struct {
	fs   types.FS
	path string
}

func (p *fsProvider) ReadBytes() ([]byte, error) { return p.fs.ReadFile(p.path) }
func (p *fsProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultsContent returns the embedded default configuration file
func DefaultsContent() string {
	return string(defaultConfig)
}

// LoadOptions carries command-line overrides
type LoadOptions struct {
	// Root overrides ALX_ROOT and the XDG default
	Root string
	// Shell overrides the configured shell
	Shell string
	// Overrides are dotted keys (e.g. "settings.auto_sync") applied last
	Overrides map[string]interface{}
	// FS reads config.toml from somewhere other than the real disk
	FS types.FS
}

// Load builds the effective configuration from, in increasing priority,
// the embedded defaults, <root>/config.toml, ALX_* environment variables
// and opts.
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")

	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Root config file if it exists
	configPath := filepath.Join(root, FileName)
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	found, err := filesystem.Exists(fsys, configPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access %s", configPath).
			WithDetail("path", configPath)
	}
	if found {
		if err := k.Load(configProvider(opts.FS, configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath).
				WithDetail("path", configPath)
		}
		log.Debug().Str("path", configPath).Msg("Loaded root config")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Flags
	overrides := make(map[string]interface{}, len(opts.Overrides)+1)
	for key, value := range opts.Overrides {
		overrides[key] = value
	}
	if opts.Shell != "" {
		overrides["shell"] = opts.Shell
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Root = root
	cfg.Dialect, err = resolveDialect(cfg.Shell)
	if err != nil {
		return nil, err
	}
	if cfg.Settings.BackupKeep < 0 {
		return nil, errors.Newf(errors.ErrConfigLoad, "settings.backup_keep must not be negative, got %d", cfg.Settings.BackupKeep)
	}
	cfg.resolvePaths()

	log.Debug().
		Str("root", cfg.Root).
		Str("shell", cfg.Dialect.String()).
		Bool("auto_sync", cfg.Settings.AutoSync).
		Msg("Configuration loaded")
	return &cfg, nil
}

// envKey maps ALX_SETTINGS_AUTO_SYNC to settings.auto_sync. Only the
// first underscore after a section name separates levels, so keys that
// contain underscores survive.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"paths", "settings"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

func resolveRoot(flagRoot string) (string, error) {
	root := flagRoot
	if root == "" {
		root = os.Getenv(EnvRoot)
	}
	if root == "" {
		root = DefaultRoot()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigLoad, "invalid root %s", root)
	}
	return abs, nil
}

// resolveDialect honors an explicit shell and otherwise detects it from
// $SHELL, falling back to bash
func resolveDialect(configured string) (shell.Dialect, error) {
	if configured != "" {
		return shell.ParseDialect(configured)
	}
	dialect, err := shell.DetectDialect(os.Getenv("SHELL"))
	if err != nil {
		log := logging.GetLogger("config")
		log.Warn().Err(err).Msg("Falling back to bash")
		return shell.Bash, nil
	}
	return dialect, nil
}
