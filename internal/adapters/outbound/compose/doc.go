// Package compose is the composition root: the single place where
// concrete capability implementations are chosen and wired together.
//
// Two factories implement ports.AdapterFactory:
//
//   - ProductionAdapterFactory wires the real adapters (httpclient,
//     fileops).
//   - InMemoryAdapterFactory wires the recording doubles around one shared
//     interaction recorder.
//
// Application code depends only on the ports; nothing outside this package
// decides production versus in-memory, and nothing decides it at runtime
// by type inspection.
package compose
