package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires file intake, mode and format selection, the crop timeline and the
// result view to the converter service. All UI strings are localized via
// Localization.
