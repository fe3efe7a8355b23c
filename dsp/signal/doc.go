// Package signal generates deterministic test material: sines, seeded noise
// and mid/side stereo pairs whose routing can be heard or measured after the
// trim engine has run.
package signal
