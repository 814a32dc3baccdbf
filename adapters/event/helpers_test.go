package event

import "github.com/khoahotran/favorite-food/internal/config"

func configWithBrokers(brokers []string) config.Config {
	var cfg config.Config
	cfg.Kafka.Brokers = brokers
	return cfg
}
