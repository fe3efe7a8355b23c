// Package trim implements a real-time channel router and gain stage for mono
// and stereo audio blocks.
//
// A block passes through three stages per sample frame:
//   - solo selection: mid, side, left, right or stereo (stereo blocks only)
//   - phase reverse or stereo flip (phase reverse wins when both are set)
//   - decibel gain
//
// [Params] holds the user and automation controlled values. Every field is
// an atomic word so a UI or automation goroutine can write while the audio
// callback reads without locks. [Engine] takes one [Snapshot] per block and
// transforms the block in place without allocating.
//
// Blocks with a channel count other than one or two pass through unmodified.
package trim
