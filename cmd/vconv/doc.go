// Command vconv is the headless front end of the video converter.
//
// It drives the same converter controller as the desktop app:
//
//	vconv formats
//	vconv convert clip.avi --to mp4 --out ~/Videos
//	vconv crop clip.mov --start 12.5 --end 40 --out ~/Videos
//
// Results are saved next to existing files without overwriting them.
package main
