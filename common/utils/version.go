package utils

// Version is the planecolor build version, reported in error chains so
// that a bug report carries enough context to reproduce it.
const Version = "0.1.0"
