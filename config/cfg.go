package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"docgen/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// StyleOverride changes selected attributes of a named style, absent
	// attributes are inherited from the current definition.
	StyleOverride struct {
		Font        string            `yaml:"font,omitempty"`
		Size        float64           `yaml:"size,omitempty" validate:"gte=0,lte=400"`
		Color       string            `yaml:"color,omitempty" validate:"omitempty,hexadecimal,len=6"`
		Weight      *common.Weight    `yaml:"weight,omitempty"`
		Italic      *bool             `yaml:"italic,omitempty"`
		Align       *common.Alignment `yaml:"align,omitempty"`
		SpaceBefore *float64          `yaml:"space_before,omitempty" validate:"omitempty,gte=0"`
		SpaceAfter  *float64          `yaml:"space_after,omitempty" validate:"omitempty,gte=0"`
	}

	TableConfig struct {
		Style    string `yaml:"style" validate:"required,alphanum"`
		Centered bool   `yaml:"centered"`
	}

	MetainformationConfig struct {
		TitleTemplate   string `yaml:"title_template"`
		CreatorTemplate string `yaml:"creator_template"`
		Identifier      string `yaml:"identifier" validate:"omitempty,uuid"`
	}

	DocumentConfig struct {
		OutputPath            string                   `yaml:"output_path" sanitize:"path_clean" validate:"required,filepath"`
		OutputNameTemplate    string                   `yaml:"output_name_template"`
		FileNameTransliterate bool                     `yaml:"file_name_transliterate"`
		FixZip                bool                     `yaml:"fix_zip"`
		ContentPath           string                   `yaml:"content_path" sanitize:"assure_file_access"`
		Language              string                   `yaml:"language" validate:"required,bcp47_language_tag"`
		PageSize              common.PageSize          `yaml:"page_size" validate:"gte=0"`
		Table                 TableConfig              `yaml:"table"`
		Metainformation       MetainformationConfig    `yaml:"metainformation"`
		Styles                map[string]StyleOverride `yaml:"styles,omitempty" validate:"dive,keys,alphanum,endkeys"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName  TemplateFieldName = "output_name_template"
	MetaTitleTemplateFieldName   TemplateFieldName = "title_template"
	MetaCreatorTemplateFieldName TemplateFieldName = "creator_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(MetaTitleTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(MetaCreatorTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
