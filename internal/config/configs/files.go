package configs

// Files configures banner storage.
type Files struct {
	// Dir is the directory banners are written to.
	Dir string `env:"DIR" envDefault:"./storage/files"`
	// BaseURL is the public path prefix banners are served under.
	BaseURL string `env:"BASE_URL" envDefault:"/storage/files"`
}
