package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Generation GenerationConfig `yaml:"generation"`
	Topics     []string         `yaml:"topics"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GenerationConfig controls the automated blog generation pipeline.
type GenerationConfig struct {
	// TextModel is the completion model used for titles and article bodies.
	TextModel string `yaml:"text_model"`

	// ImageModelURL is the synchronous image synthesis endpoint.
	ImageModelURL string `yaml:"image_model_url"`

	// PlaceholderImageURL is uploaded into FallbackFolder when image
	// synthesis fails.
	PlaceholderImageURL string `yaml:"placeholder_image_url"`

	// ImageFolder and FallbackFolder are asset-store destination folders.
	ImageFolder    string `yaml:"image_folder"`
	FallbackFolder string `yaml:"fallback_folder"`

	// HourlyIntervalMinutes drives the recurring single-run job.
	// DailyBatchSize posts are generated by the daily batch job.
	HourlyIntervalMinutes int `yaml:"hourly_interval_minutes"`
	DailyBatchSize        int `yaml:"daily_batch_size"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// ValidateRequiredEnv reports the first environment variable the process
// cannot start without.
func ValidateRequiredEnv() error {
	for _, key := range []string{"MONGO_URI", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
