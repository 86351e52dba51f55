package global

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)
