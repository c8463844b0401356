package triumph

// Version is the client library version, sent in the User-Agent header.
const Version = "0.3.0"

// userAgent is the User-Agent header value.
const userAgent = "triumph-go/" + Version
