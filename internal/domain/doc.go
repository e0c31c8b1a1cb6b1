// Package domain holds the pure value types of the archiver: feeds,
// episodes, and the attribute keys written onto archived files.
//
// Domain types carry validated data and derivations only. Parsing from the
// wire format lives here (the feed format is part of the domain contract),
// but nothing in this package performs I/O or imports adapter concerns.
// Capability errors (transport, move, attributes) belong to internal/ports;
// this package only knows validation failures.
package domain
