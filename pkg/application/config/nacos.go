package config

import (
	"fmt"
	"strings"

	"github.com/nacos-group/nacos-sdk-go/v2/clients"
	"github.com/nacos-group/nacos-sdk-go/v2/clients/config_client"
	"github.com/nacos-group/nacos-sdk-go/v2/common/constant"
	"github.com/nacos-group/nacos-sdk-go/v2/vo"
	"github.com/spf13/viper"
)

const defaultNacosGroup = "DEFAULT_GROUP"

// NacosConfig pulls one YAML document from the nacos config center.
type NacosConfig struct {
	dataID string
	group  string
	cli    config_client.IConfigClient
}

func (n *NacosConfig) GetConfig() *viper.Viper {
	content, err := n.cli.GetConfig(vo.ConfigParam{
		DataId: n.dataID,
		Group:  n.group,
	})
	if err != nil {
		panic(fmt.Errorf("nacos get config %s/%s: %w", n.group, n.dataID, err))
	}

	// 远程配置同样是 YAML
	v := viper.New()
	v.SetConfigType("yaml")
	if err = v.ReadConfig(strings.NewReader(content)); err != nil {
		panic(fmt.Errorf("nacos parse config %s/%s: %w", n.group, n.dataID, err))
	}
	return v
}

func NewNacosConfig(conf *viper.Viper) *NacosConfig {
	conf.SetDefault("app.config.nacos.group", defaultNacosGroup)
	conf.SetDefault("app.config.nacos.data_id", conf.GetString("app.name")+".yml")
	conf.SetDefault("app.config.nacos.port", 8848)
	conf.SetDefault("app.config.nacos.timeout", 5000)

	cc := constant.ClientConfig{
		NamespaceId:         conf.GetString("app.config.nacos.namespace"),
		TimeoutMs:           conf.GetUint64("app.config.nacos.timeout"),
		NotLoadCacheAtStart: !conf.GetBool("app.config.nacos.is_load_cache"),
		LogDir:              conf.GetString("app.config.nacos.log_dir"),
		CacheDir:            conf.GetString("app.config.nacos.cache_dir"),
		LogLevel:            conf.GetString("app.config.nacos.log_level"),
		Username:            conf.GetString("app.config.nacos.username"),
		Password:            conf.GetString("app.config.nacos.password"),
	}
	sc := []constant.ServerConfig{
		*constant.NewServerConfig(conf.GetString("app.config.nacos.addr"), conf.GetUint64("app.config.nacos.port")),
	}
	client, err := clients.NewConfigClient(
		vo.NacosClientParam{
			ClientConfig:  &cc,
			ServerConfigs: sc,
		},
	)
	if err != nil {
		panic(fmt.Errorf("nacos config client: %w", err))
	}

	return &NacosConfig{
		dataID: conf.GetString("app.config.nacos.data_id"),
		group:  conf.GetString("app.config.nacos.group"),
		cli:    client,
	}
}
