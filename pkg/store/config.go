package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config selects and locates the persistence backend.
type Config interface {
	BasePath() string
	Backend() string
	Name() string
}

// LoadConfig reads .study(.yaml) from $STUDY_CONFIG_PATH or the working
// directory, with STUDY_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.study.db")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("name", "study")
	v.SetConfigName(".study") // .yaml is implicit
	v.SetEnvPrefix("STUDY")
	v.AutomaticEnv()

	if override := os.Getenv("STUDY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &FileConfig{
		Path:        path,
		BackendName: v.GetString("backend"),
		KVName:      v.GetString("name"),
	}, nil
}

// FileConfig is the plain Config implementation.
type FileConfig struct {
	Path        string `json:"path"`
	BackendName string `json:"backend"`
	KVName      string `json:"name"`
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Backend() string {
	return f.BackendName
}

func (f *FileConfig) Name() string {
	return f.KVName
}
