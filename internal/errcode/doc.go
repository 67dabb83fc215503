// Package errcode packs an error description into a single 64-bit code.
//
// Every error code is a negative int64 following this bit pattern:
//
//	EVVVVVVVRRRRRRRRRRRRRRRRLLLLLLLLLLLLLLLLNAAAAAAAAUUUUUUUUUUUUUUU
//	E = error bit       ( 1 bit  @ 63) \
//	V = api version     ( 7 bits @ 56) | 40-bit locator
//	R = api revision    (16 bits @ 40) |
//	L = source line     (16 bits @ 24) /
//	N = negate bit      ( 1 bit  @ 23) \
//	A = attribute code  ( 8 bits @ 15) | 24-bit descriptor
//	U = noun code       (15 bits @  0) /
//
// The locator half identifies where the code was produced and never affects
// rendering. The descriptor half is the message: an optional NOT, one of the
// fixed attribute words, and an app-defined noun resolved through a glossary.
package errcode
