package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		MySQL struct {
			DSN string `yaml:"dsn"` // Data Source Name
		} `yaml:"mysql"`
	} `yaml:"database"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`

	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redisclient"`
}

// GlobalConfig 全局配置
var GlobalConfig = &Config{}

// Init 初始化配置
func Init() error {
	f, err := os.Open("config.yaml")
	if err != nil {
		// 如果配置文件不存在，使用默认配置
		log.Println("配置文件不存在，使用默认配置")
		GlobalConfig = &Config{}
		applyDefaults()
		return nil
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&GlobalConfig)
	if err != nil {
		return err
	}

	applyDefaults()

	log.Printf("配置加载成功: Redis=%s:%d", GlobalConfig.Redis.Host, GlobalConfig.Redis.Port)
	return nil
}

// applyDefaults 补齐缺失的配置项
func applyDefaults() {
	if GlobalConfig.Server.Port == 0 {
		GlobalConfig.Server.Port = 5000
	}
	if GlobalConfig.Database.MySQL.DSN == "" {
		GlobalConfig.Database.MySQL.DSN = "root:123456@tcp(127.0.0.1:3306)/eventa?charset=utf8mb4&parseTime=True&loc=Local"
	}
	if len(GlobalConfig.CORS.AllowOrigins) == 0 {
		GlobalConfig.CORS.AllowOrigins = []string{"http://localhost:3000"}
	}
	if GlobalConfig.Redis.Host == "" {
		GlobalConfig.Redis.Host = "127.0.0.1"
	}
	if GlobalConfig.Redis.Port == 0 {
		GlobalConfig.Redis.Port = 6379
	}
}
