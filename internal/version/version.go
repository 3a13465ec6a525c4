package version

const (
	AppName    = "Mordomo"
	AppVersion = "2.0.0"
)
