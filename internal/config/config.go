package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Gateway Gateway `envPrefix:"SIMPLEPAY_"`
}

type Gateway struct {
	// Merchant is the merchant account identifier issued by the gateway.
	Merchant      string `env:"MERCHANT"`
	PluginVersion string `env:"PLUGIN_VERSION" envDefault:"1.0.0"`
	Locale        string `env:"LOCALE" envDefault:"en_US"`
	RefPrefix     string `env:"REF_PREFIX"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
