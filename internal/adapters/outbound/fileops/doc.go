// Package fileops implements the FileMover and FileAttributes ports
// against the local filesystem.
//
// Mover refuses to overwrite an existing destination and reports failures
// as *ports.MoveError. Attributes maps the creation-date attribute onto
// file times: portable Go cannot set a true birth time, so the published
// date lands on the modification time, which is what media libraries sort
// by anyway.
package fileops
