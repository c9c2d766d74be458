package internal

// Version is the doctrans release version, shown by --version.
const Version = "0.1.0"
