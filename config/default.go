package config

import (
	"bytes"
	"github.com/pkg/errors"
	"io"
	"nop/log"
	"os"
	"path"
	"text/template"
)

var DefaultConfig = Config{
	LogLevel:  log.LevelInfo.String(),
	LogFormat: string(log.FormatText),
	Output: OutputConfig{
		Format: OutputFormatAuto,
	},
	Store: StoreConfig{
		Path: DBPath,
	},
	Verify: VerifyConfig{
		Workers:      4,
		MaxFileBytes: 64 * 1024 * 1024,
	},
}

const defaultConfigTemplateText = `# nopctl Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Sets the log format. Either "text" or "json". Logs are written to stderr.
log_format = "{{.LogFormat}}"

# Configures how encoded bytes are printed.
[output]
  # One of "auto", "hex" or "raw". "auto" prints hex to terminals and raw
  # bytes to pipes and files.
  format = "{{.Output.Format}}"

# Configures the local value store.
[store]
  # Sets the LevelDB directory. Relative paths resolve against the
  # home directory.
  path = "{{.Store.Path}}"

# Configures the verify command.
[verify]
  # Sets the largest file verify will decode. Set to 0 for no limit.
  max_file_bytes = {{.Verify.MaxFileBytes}}
  # Sets how many files are decoded concurrently.
  workers = {{.Verify.Workers}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFile), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFile), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
