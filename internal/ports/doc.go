// Package ports defines the outbound ports (interfaces and types) used to
// decouple the archiving logic from the adapters that perform real I/O.
//
// Purpose
// -------
// Ports are the boundary between the application and the infrastructure.
// Each capability interface exposes exactly the operations the archiver
// needs from an external resource (network, filesystem), so production
// adapters and in-memory test doubles are interchangeable variants selected
// at composition time, never at runtime by type inspection.
//
// Files and responsibilities
// --------------------------
//   - capabilities.go
//   - The four capability interfaces: `DataFetcher`, `Downloader`,
//     `FileMover`, and `FileAttributes`. Each interface includes an
//     "Error Contract" in comments describing the errors returned by
//     implementations.
//   - types.go
//   - Shared data types crossing the boundary: `ResponseMeta`.
//   - errors.go
//   - The error taxonomy for capability implementations: `TransportError`,
//     `MoveError`, `ErrAttributesNotFound`, and `UnimplementedError`.
//   - factory.go
//   - `AdapterFactory`, the contract the composition roots implement
//     (see internal/adapters/outbound/compose).
//
// Ports should remain small and well-documented. They define the
// application's expectations of adapters and are the primary place to
// record error contracts.
//
// Every capability method may be invoked concurrently by the archiver;
// implementations must not corrupt shared state under concurrent calls.
package ports
