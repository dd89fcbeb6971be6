package config

import (
	"github.com/spf13/viper"
)

// RemoteConfig supplies settings that overlay the local bootstrap file.
type RemoteConfig interface {
	GetConfig() *viper.Viper
}

// NewConfig reads the bootstrap file at path. When app.config.nacos is
// present the remote document is merged over the local values.
func NewConfig(path string) *viper.Viper {
	conf := viper.New()
	conf.SetConfigFile(path)
	if err := conf.ReadInConfig(); err != nil {
		panic(err)
	}
	
	if remote := NewRemoteConfig(conf); remote != nil {
		if err := conf.MergeConfigMap(remote.GetConfig().AllSettings()); err != nil {
			panic(err)
		}
	}
	return conf
}

func NewRemoteConfig(conf *viper.Viper) RemoteConfig {
	if conf.Get("app.config.nacos") != nil {
		return NewNacosConfig(conf)
	}
	return nil
}
