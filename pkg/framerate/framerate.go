// Package framerate resolves the frame rate given on the command line.
package framerate

import "strconv"

// Default is used when no usable frame rate is given.
const Default = 30

// Parse returns the value of s as a 32-bit signed integer, or Default when s
// is empty, not an integer, or out of that range. Other bounds are not checked.
func Parse(s string) int {
	fps, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Default
	}
	return int(fps)
}

// FromArgs applies Parse to the first positional argument, if any.
func FromArgs(args []string) int {
	if len(args) == 0 {
		return Default
	}
	return Parse(args[0])
}
