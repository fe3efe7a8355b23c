// Package polarity compares a processed signal against its reference to
// recover the time offset, linear gain and polarity that relate them.
//
// The offset is found at the peak of the FFT cross-correlation; gain and
// correlation are then computed directly over the overlapping samples at
// that offset. This is the measurement behind a null test: after a pure
// gain/polarity stage the correlation is ±1 and the gain equals the trim.
package polarity
