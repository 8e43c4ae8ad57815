// Package atshim exposes the AudioToolbox audio converter and audio format
// entry points without linking against CoreAudioToolbox.
//
// The library is located and loaded the first time any forwarding entry
// point is called. Candidate locations are tried in order: a portable copy
// next to the executable, the directory named by the install record, and,
// when built with the appx tag on Windows, the packaged application's
// install directory. Exactly one load attempt is made per process.
//
// When no candidate can be loaded every forwarding entry point returns
// ExecutableLoadError without calling anything. Arguments and results are
// otherwise passed through unchanged; the library owns all semantics.
package atshim
