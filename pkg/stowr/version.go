package stowr

// Version is the stowr module version.
const Version = "0.1.0"
