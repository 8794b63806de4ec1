package configs

// Redis holds the connection settings of the redis meter.
type Redis struct {
	Address   string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"adrotation:"`
}
