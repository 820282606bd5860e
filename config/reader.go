package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const DefaultMaxUploadSize = 16 << 20 // 16 MiB

// DBConfig - параметры подключения к одной базе
type DBConfig struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type ConfigSchema struct {
	Database struct {
		Master   DBConfig   `yaml:"master"`
		Replicas []DBConfig `yaml:"replicas"`
	} `yaml:"db"`
	Backend struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		// SecretKey распознается, но пока не используется: сессий у доски нет
		SecretKey string `yaml:"secret_key"`
	} `yaml:"backend"`
	Storage struct {
		UploadDir     string `yaml:"upload_dir"`
		MaxUploadSize int64  `yaml:"max_upload_size"`
	} `yaml:"storage"`
	Logs struct {
		// Level зарезервирован: логирование сейчас не имеет уровней
		Level string `yaml:"level"`
	} `yaml:"logs"`
}

// Default возвращает конфигурацию для локального запуска без файла
func Default() *ConfigSchema {
	conf := &ConfigSchema{}
	conf.Database.Master = DBConfig{
		Name: "padlet_db",
		Host: "localhost",
		Port: 5432,
		User: "root",
	}
	conf.Backend.Host = "0.0.0.0"
	conf.Backend.Port = 8080
	conf.Backend.SecretKey = "dev_key"
	conf.Storage.UploadDir = "web/static/uploads"
	conf.Storage.MaxUploadSize = DefaultMaxUploadSize
	conf.Logs.Level = "info"
	return conf
}

// Load читает yaml-конфигурацию и накладывает переменные окружения.
// Отсутствующий файл не ошибка: остаются дефолты и окружение.
func Load(filePath string) (*ConfigSchema, error) {
	conf := Default()

	data, err := os.ReadFile(filePath)
	if err == nil {
		if err = yaml.Unmarshal(data, conf); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	conf.applyEnv()

	if conf.Storage.MaxUploadSize <= 0 {
		conf.Storage.MaxUploadSize = DefaultMaxUploadSize
	}
	return conf, nil
}

func (c *ConfigSchema) applyEnv() {
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.Master.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Master.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Master.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Master.Port = port
		}
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Master.Name = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.Backend.SecretKey = v
	}
	if v := os.Getenv("UPLOAD_FOLDER"); v != "" {
		c.Storage.UploadDir = v
	}
	if v := os.Getenv("BACKEND_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Backend.Port = port
		}
	}
}
