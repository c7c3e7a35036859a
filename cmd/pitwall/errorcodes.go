package main

const Code = "code"

// The configured UDP address did not resolve; the process stops.
const ErrorAddressNotResolved = 1

// Binding the UDP listener failed; the process stops.
const ErrorSetupUDPConnection = 2

// A datagram arrived that is shorter than the fixed packet header.
const ErrorTruncatedHeader = 3
