// Package plugin adapts the trim engine to a plugin host.
//
// It publishes the parameter metadata a host needs for automation and
// display, translates discrete parameter-change events into writes on the
// shared [trim.Params], and carries the lifecycle surface of an audio
// effect (layout negotiation, prepare/release, programs, state) as minimal
// stubs around [trim.Engine].
package plugin
