package transit

// Version is the library version reported by the CLI.
var Version = "0.3.0"
