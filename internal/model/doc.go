package model

// Package model defines domain data structures used across the app: source
// files, target formats, trim windows, conversion jobs and their status, and
// output artifacts. Structures are designed for direct binding in the UI and
// explicit state transitions.
