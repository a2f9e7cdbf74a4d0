// Package converter implements the convert/crop controller: file intake,
// target and mode selection, the trim timeline, and one engine job at a
// time. UI front ends observe it through state snapshots.
package converter
