// Package adapters contains infrastructure implementations of port interfaces.
//
// This package is the adapter layer in hexagonal architecture. It implements
// the capability interfaces defined in internal/ports using concrete
// technologies (net/http, the filesystem) plus deterministic in-memory
// doubles for tests.
//
// Boundaries:
//   - Adapters implement: internal/ports interfaces
//   - Adapters import from: internal/domain, internal/ports, standard library
//   - Domain and archiver layers never import concrete adapters directly;
//     they receive them through ports.AdapterFactory
//
// Organization:
//
//   - outbound/httpclient/ - real HTTP fetcher and downloader
//   - outbound/fileops/    - real file mover and attribute writer
//   - outbound/inmemory/   - recording doubles with canned responses
//   - outbound/compose/    - factories wiring a full adapter set together
//
// The compose factories are the composition roots: production code uses
// ProductionAdapterFactory, tests use InMemoryAdapterFactory and read the
// shared interaction recorder afterwards.
package adapters
