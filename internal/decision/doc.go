// Package decision holds the profile table of infrastructure decision
// contracts and the lookup operations over it. A Table is built once and is
// read-only afterwards, so it can be shared freely between goroutines.
package decision
