package version

// Version is the release tag printed by -v/--version.
const Version = "0.1.0"
