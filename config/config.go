package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeySourcePath           = "source.path"
	KeySourceFormat         = "source.format"
	KeyReportOutputDir      = "report.output_dir"
	KeyReportFilenamePrefix = "report.filename_prefix"
	KeyUploadURL            = "upload.url"
	KeyUploadPrefix         = "upload.prefix"
	KeyUploadToken          = "upload.token"
	KeyLogLevel             = "log.level"
	KeyLogFormat            = "log.format"
)

type Config struct {
	Source SourceConfig `mapstructure:"source"`
	Report ReportConfig `mapstructure:"report" validate:"required"`
	Upload UploadConfig `mapstructure:"upload"`
	Log    LogConfig    `mapstructure:"log"`
}

type SourceConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=csv excel"`
}

type ReportConfig struct {
	OutputDir      string `mapstructure:"output_dir" validate:"required"`
	FilenamePrefix string `mapstructure:"filename_prefix" validate:"required"`
}

type UploadConfig struct {
	URL    string `mapstructure:"url" validate:"omitempty,url"`
	Prefix string `mapstructure:"prefix"`
	Token  string `mapstructure:"token"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# hrformatter configuration
source:
  # Default clock-event export consumed by "hrformatter run" when --input is omitted.
  path: ""
  # csv or excel; inferred from the file extension when empty.
  format: ""

report:
  output_dir: "output"
  filename_prefix: "HR_Report"

upload:
  # Blob endpoint the workbook is PUT to. Leave empty to skip uploading.
  url: ""
  prefix: "hr-reports/"
  token: ""

log:
  level: "info"
  format: "text"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyReportOutputDir, "output")
	v.SetDefault(KeyReportFilenamePrefix, "HR_Report")
	v.SetDefault(KeyUploadPrefix, "hr-reports/")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}
