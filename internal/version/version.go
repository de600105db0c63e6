package version

// Version is the current icgr toolkit release.
const Version = "0.3.1"
