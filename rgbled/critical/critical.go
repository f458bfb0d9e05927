// Package critical provides the short interrupt-free section used for every
// value shared between an interrupt handler and the foreground loop.
//
// On TinyGo the section globally masks interrupts. On a host build there are no
// interrupts, so goroutines standing in for interrupt handlers are serialized
// with a process-wide mutex instead.
//
//	s := critical.Enter()
//	v := shared
//	critical.Exit(s)
//
// Keep sections to a handful of loads and stores: a long section delays the
// tick interrupt and stretches every BAM plane.
package critical
