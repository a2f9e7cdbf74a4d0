// Package timeline holds the crop trim window and the drag interaction that
// edits it.
//
// A drag is a capture scope: BeginDrag opens it, every pointer move goes
// through Drag.Move until Release, regardless of where the pointer is.
package timeline
