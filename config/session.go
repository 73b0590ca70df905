package config

type Session struct {
	Secret     string `json:"secret" yaml:"secret"`
	TTLMinutes int    `json:"ttl_minutes" yaml:"ttl_minutes"`
}
