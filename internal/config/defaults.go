package config

const (
	defaultDataDir        = "~/.local/share/marquee"
	defaultLogDir         = "~/.local/share/marquee/logs"
	defaultBaseURL        = "https://whatson.bfi.org.uk/Online/default.asp"
	defaultHost           = "whatson.bfi.org.uk"
	defaultSearchID       = "25E7EA2E-291F-44F9-8EBC-E560154FDAEB"
	defaultUserAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:145.0) Gecko/20100101 Firefox/145.0"
	defaultDaysAhead      = 14
	defaultRequestTimeout = 30
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Site: Site{
			BaseURL:        defaultBaseURL,
			Host:           defaultHost,
			SearchID:       defaultSearchID,
			UserAgent:      defaultUserAgent,
			DaysAhead:      defaultDaysAhead,
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
