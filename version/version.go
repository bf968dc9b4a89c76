package version

// Version is the release version reported by the version command.
var Version = "0.3.1"
