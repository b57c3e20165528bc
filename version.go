package signalboard

// Version is the SDK release version, reported in the User-Agent header.
const Version = "0.4.0"

const userAgent = "signalboard-go/" + Version
