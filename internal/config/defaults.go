package config

import "time"

const (
	defaultAdapterAddress  = "http://localhost:5000/"
	defaultRequestTimeout  = 30 * time.Second
	defaultDSN             = "webcrm-console.db"
	defaultSummaryInterval = time.Minute
	defaultPhoneRegion     = "IT"
	defaultServerAddress   = "localhost:5000"
	defaultServerRateLimit = 50
	defaultTokenDuration   = 8 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{PhoneRegion: defaultPhoneRegion},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimit:      defaultServerRateLimit,
			TokenDuration:  defaultTokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{SummaryInterval: defaultSummaryInterval},
	}
}
