package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"text/template"

	_ "embed"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	cmtos "github.com/verus-go/verusrpc/internal/os"
)

// DefaultDirPerm is the default permissions used when creating directories.
const DefaultDirPerm = 0o700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate").Funcs(template.FuncMap{
		"StringsJoin": strings.Join,
		"toml":        tomlString,
	})
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// tomlString renders s as a quoted TOML string.
func tomlString(s string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]string{"v": s}); err != nil {
		return "", errors.Wrap(err, "encoding TOML string")
	}
	return strings.TrimSpace(strings.TrimPrefix(buf.String(), "v = ")), nil
}

// EnsureRoot creates the root and config directories if they don't exist,
// and writes config to the config file if it is missing.
func EnsureRoot(rootDir string, config *Config) error {
	if err := cmtos.EnsureDir(rootDir, DefaultDirPerm); err != nil {
		return err
	}
	if err := cmtos.EnsureDir(filepath.Join(rootDir, DefaultConfigDir), DefaultDirPerm); err != nil {
		return err
	}

	configFilePath := filepath.Join(rootDir, defaultConfigFilePath)
	if !cmtos.FileExists(configFilePath) {
		return WriteConfigFile(configFilePath, config)
	}
	return nil
}

// ConfigFile returns the path of the config file under rootDir.
func ConfigFile(rootDir string) string {
	return filepath.Join(rootDir, defaultConfigFilePath)
}

// RenderConfig renders config using the template.
func RenderConfig(config *Config) ([]byte, error) {
	var buffer bytes.Buffer
	if err := configTemplate.Execute(&buffer, config); err != nil {
		return nil, errors.Wrap(err, "rendering config template")
	}
	return buffer.Bytes(), nil
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *Config) error {
	contents, err := RenderConfig(config)
	if err != nil {
		return err
	}
	if err := cmtos.WriteFile(configFilePath, contents, 0o600); err != nil {
		return errors.Wrapf(err, "writing %s", configFilePath)
	}
	return nil
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go.
//
//go:embed config.toml.tpl
var defaultConfigTemplate string
