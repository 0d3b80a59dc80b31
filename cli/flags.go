package cli

const (
	FlagHome   = "home"
	FlagFormat = "format"
	FlagOutput = "output"
)
