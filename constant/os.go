package constant

// GOOS values the CLI branches on.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
