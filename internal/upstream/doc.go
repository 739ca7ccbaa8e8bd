// Package upstream is the push source behind the events registry when it
// runs as a daemon. Hub holds the per-kind listener tables and implements
// events.Source; Loop is the single goroutine that decodes raw transport
// notifications and delivers them through the Hub, so listeners never run
// concurrently with each other.
package upstream
