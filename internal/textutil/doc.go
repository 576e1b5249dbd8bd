// Package textutil repairs text damaged by encoding round-trips.
//
// The Olist exports contain Portuguese city names and review text that were
// written as UTF-8, re-read as Latin-1, and written out as UTF-8 again,
// turning every accented character into a two-character mojibake sequence
// ("sÃ£o paulo" for "são paulo"). Repair substitutes the known sequences and
// recomposes the result to NFC.
package textutil
