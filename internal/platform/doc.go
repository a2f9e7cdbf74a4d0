package platform

// Package platform contains OS integration glue: filesystem helpers,
// collision-free output paths, and OS open/reveal.
