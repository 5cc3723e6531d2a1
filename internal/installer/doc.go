// Package installer fetches the delegate package into a freshly initialized
// project by shelling out to the package manager. The install is the single
// suspension point of the whole bootstrap: the launcher blocks until npm
// exits and then inspects the exit code. Install progress streams straight
// to the user's terminal via inherited stdio.
package installer
