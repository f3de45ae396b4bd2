// Package lib the domkit build information
package lib

// Banner the banner
const Banner = `
     _                 _    _ _   
  __| | ___  _ __ ___ | | _(_) |_ 
 / _' |/ _ \| '_ ' _ \| |/ / | __|
| (_| | (_) | | | | | |   <| | |_ 
 \__,_|\___/|_| |_| |_|_|\_\_|\__|
`

var (
	// Version is the current version.
	Version = "(untracked)"
	// CommitSHA is the commit sha.
	CommitSHA = "(unknown)"
)
