package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	Writer      WriterConfig  `yaml:"writer"`
	GeminiModel string        `yaml:"gemini_model"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WriterConfig 는 블로그 글 생성 방식을 정의한다.
// mode 가 "gemini" 면 노트를 Gemini 호출로 본문을 생성하고,
// 그 외에는 고정 템플릿으로 노트를 감싼다.
type WriterConfig struct {
	Mode string `yaml:"mode"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// config.yaml 이 없으면 기본값으로 동작한다.
	// (PORT 환경변수만 주어지는 배포 환경을 지원하기 위함)
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		config = defaultConfig()
		return
	}

	c := defaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		panic(err)
	}
	config = c
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Logging:     LoggingConfig{Level: "info"},
		Writer:      WriterConfig{Mode: "template"},
		GeminiModel: "gemini-2.0-flash",
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
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
