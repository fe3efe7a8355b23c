// Package monitor plays a looping source through the trim processor in real
// time and lets the terminal drive its parameters while audio runs.
//
// The audio callback and the key handler share one trim.Params; the callback
// only reads it and the key handler only writes it through plugin.Binding.
package monitor
