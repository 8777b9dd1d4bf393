package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt      = 1e-3
	DefaultSteps   = 200
	DefaultN       = 400
	DefaultGravity = -9.81
	DefaultRho     = 1000.0
	DefaultHeight  = 10.0
)

type Config struct {
	Group        string          `yaml:"group"`
	Scheme       string          `yaml:"scheme"`
	N            int             `yaml:"n"`
	Dt           float64         `yaml:"dt"`
	Steps        int             `yaml:"steps"`
	EPEC         bool            `yaml:"epec"`
	Gravity      GravityConfig   `yaml:"gravity"`
	InitState    InitStateConfig `yaml:"init_state"`
	OutputArrays []string        `yaml:"output_arrays"`
	DataDir      string          `yaml:"data_dir"`
}

type GravityConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type InitStateConfig struct {
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Rho    float64 `yaml:"rho"`
}

func DefaultConfig() *Config {
	return &Config{
		Group:  "fluid",
		Scheme: "wcsph",
		N:      DefaultN,
		Dt:     DefaultDt,
		Steps:  DefaultSteps,
		Gravity: GravityConfig{
			Y: DefaultGravity,
		},
		InitState: InitStateConfig{
			Height: DefaultHeight,
			Rho:    DefaultRho,
		},
		DataDir: ".lagsim",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
