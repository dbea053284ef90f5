package config

import (
	"github.com/spf13/viper"

	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// Cfg holds the loaded configuration for the whole process.
var Cfg model.Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("database.path", "./data/botmoderno.db")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("moderBot.gate.challenge_ttl_seconds", 120)
	viper.SetDefault("moderBot.gate.reminder_seconds", 300)
	viper.SetDefault("adminApi.listen", ":8080")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
