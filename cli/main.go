// Command atshim reports where the CoreAudioToolbox library is looked for
// and whether it can be loaded.
package main

import "os"

func main() {
	os.Exit(Main())
}

// Main runs the command and returns the process exit status.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
