package constant

// Set at build time with -ldflags "-X github.com/xishang0128/textfix/constant.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
)
