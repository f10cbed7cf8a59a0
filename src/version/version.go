package version

// Version is the conf-rollback release version.
var Version = "0.1.0"
