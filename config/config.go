package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "EMOTICHAT"

type Service struct {
	URL   string `mapstructure:"url" yaml:"url"`
	Token string `mapstructure:"token" yaml:"token,omitempty"`
}
type Services struct {
	Sentiment Service `mapstructure:"sentiment" yaml:"sentiment"`
	Emotion   Service `mapstructure:"emotion" yaml:"emotion"`
	NLP       Service `mapstructure:"nlp" yaml:"nlp"`
	Face      Service `mapstructure:"face" yaml:"face"`
}
type Providers struct {
	Sentiment  string `mapstructure:"sentiment" yaml:"sentiment"`   // http | vader
	Linguistic string `mapstructure:"linguistic" yaml:"linguistic"` // http | prose
	Face       string `mapstructure:"face" yaml:"face"`             // http | gcp_vision
}
type Server struct {
	Addr           string        `mapstructure:"addr" yaml:"addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
	CORSOrigins    []string      `mapstructure:"cors_origins" yaml:"cors_origins"`
}
type Generator struct {
	BaseURL      string `mapstructure:"base_url" yaml:"base_url"`
	APIKey       string `mapstructure:"api_key" yaml:"api_key"`
	Model        string `mapstructure:"model" yaml:"model"`
	SystemPrompt string `mapstructure:"system_prompt" yaml:"system_prompt"`
	MaxTokens    int64  `mapstructure:"max_tokens" yaml:"max_tokens"`
}
type Root struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`
	Server    Server    `mapstructure:"server" yaml:"server"`
	Services  Services  `mapstructure:"services" yaml:"services"`
	Providers Providers `mapstructure:"providers" yaml:"providers"`
	Vision    struct {
		CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
	} `mapstructure:"vision" yaml:"vision"`
	Generator     Generator     `mapstructure:"generator" yaml:"generator"`
	ClientTimeout time.Duration `mapstructure:"client_timeout" yaml:"client_timeout"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("server.addr", ":5001")
	v.SetDefault("server.request_timeout", 60*time.Second)
	v.SetDefault("server.max_body_bytes", 10<<20)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("services.sentiment.url", "")
	v.SetDefault("services.sentiment.token", "")
	v.SetDefault("services.emotion.url", "")
	v.SetDefault("services.emotion.token", "")
	v.SetDefault("services.nlp.url", "")
	v.SetDefault("services.nlp.token", "")
	v.SetDefault("services.face.url", "")
	v.SetDefault("services.face.token", "")
	v.SetDefault("providers.sentiment", "http")
	v.SetDefault("providers.linguistic", "http")
	v.SetDefault("providers.face", "http")
	v.SetDefault("vision.credentials_file", "")
	v.SetDefault("generator.base_url", "https://api.openai.com/v1/")
	v.SetDefault("generator.api_key", "")
	v.SetDefault("generator.model", "gpt-3.5-turbo")
	v.SetDefault("generator.system_prompt", "You are a helpful assistant.")
	v.SetDefault("generator.max_tokens", 0)
	v.SetDefault("client_timeout", 60*time.Second)
}

// Load reads defaults, then the config file, then EMOTICHAT_* environment
// variables. With an empty path it looks for config/<CONFIG_ENV>/config.yaml
// and carries on with defaults if there is none.
func Load(path string) (*Root, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is Load on a caller-supplied viper, so command-line flags bound to
// it take precedence.
func LoadWith(v *viper.Viper, path string) (*Root, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = guessPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func guessPath() string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	var guess []string = []string{
		filepath.Join("config", env, "config.yaml"),
		filepath.Join("config.yaml"),
	}
	for _, p := range guess {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func (c *Root) Validate() error {
	var errs []error
	switch c.Providers.Sentiment {
	case "http":
		if c.Services.Sentiment.URL == "" {
			errs = append(errs, errors.New("services.sentiment.url is required for the http sentiment provider"))
		}
	case "vader":
	default:
		errs = append(errs, fmt.Errorf("unknown sentiment provider %q", c.Providers.Sentiment))
	}
	switch c.Providers.Linguistic {
	case "http":
		if c.Services.NLP.URL == "" {
			errs = append(errs, errors.New("services.nlp.url is required for the http linguistic provider"))
		}
	case "prose":
	default:
		errs = append(errs, fmt.Errorf("unknown linguistic provider %q", c.Providers.Linguistic))
	}
	switch c.Providers.Face {
	case "http":
		if c.Services.Face.URL == "" {
			errs = append(errs, errors.New("services.face.url is required for the http face provider"))
		}
	case "gcp_vision":
	default:
		errs = append(errs, fmt.Errorf("unknown face provider %q", c.Providers.Face))
	}
	if c.Services.Emotion.URL == "" {
		errs = append(errs, errors.New("services.emotion.url is required"))
	}
	if c.Generator.APIKey == "" {
		errs = append(errs, errors.New("generator.api_key is required"))
	}
	if c.Generator.Model == "" {
		errs = append(errs, errors.New("generator.model is required"))
	}
	return errors.Join(errs...)
}

// Dump writes cfg as YAML with credentials redacted.
func Dump(w io.Writer, cfg *Root) error {
	c := *cfg
	c.Generator.APIKey = redact(c.Generator.APIKey)
	c.Services.Sentiment.Token = redact(c.Services.Sentiment.Token)
	c.Services.Emotion.Token = redact(c.Services.Emotion.Token)
	c.Services.NLP.Token = redact(c.Services.NLP.Token)
	c.Services.Face.Token = redact(c.Services.Face.Token)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&c); err != nil {
		return err
	}
	return enc.Close()
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "REDACTED"
}
