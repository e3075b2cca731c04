package log

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

const timeLayout = "2006-01-02 15:04:05.000"
