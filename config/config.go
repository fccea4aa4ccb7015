package config

import (
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxTicks              int
	TickInterval          time.Duration
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("scheduler.max_ticks", 100000)
		viper.SetDefault("scheduler.tick_interval_ms", 500)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalln(err)
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
		config.MaxTicks = viper.GetInt("scheduler.max_ticks")
		config.TickInterval = time.Duration(viper.GetInt("scheduler.tick_interval_ms")) * time.Millisecond
	})

	return config
}
