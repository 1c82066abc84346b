// Package agent is a small in-process actor runtime. Agents own protocols
// that map message schemas to typed handlers, exchange JSON envelopes
// through a Bureau, and each process their inbox on a single goroutine.
package agent
