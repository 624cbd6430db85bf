package config

import (
	"github.com/allbin/ptt"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loaded is the outcome of Load.
type Loaded struct {
	Config     ptt.Config
	File       string // configuration file consulted
	FileLoaded bool   // false when the default file does not exist
}

// Load resolves the configuration for one invocation from defaults, the
// configuration file, the environment, the flags in fs and any overrides,
// in that order of precedence. A missing default file is skipped; a missing
// file the user named is an error.
func Load(fs *pflag.FlagSet, env *viper.Viper, overrides ...Layer) (Loaded, error) {
	path, explicit := FilePath(fs, env)
	res := Loaded{File: path}

	layers := []Layer{Defaults()}
	file, err := FromFile(path)
	switch {
	case err == nil:
		layers = append(layers, file)
		res.FileLoaded = true
	case isNotExist(err) && !explicit:
	default:
		return res, err
	}

	if env != nil {
		layers = append(layers, FromEnv(env))
	}
	layers = append(layers, FromFlags(fs))
	layers = append(layers, overrides...)

	res.Config, err = Resolve(layers...)
	return res, err
}
