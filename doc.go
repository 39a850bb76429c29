// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package fifo implements first-in-first-out objects logic.
// It gives access to OS-native FIFO objects via:
//
//	Mkfifo on unix
//	named pipes on windows
//
// A Fifo is opened either as a Reader or as a Writer, in Wait (blocking)
// or NoWait (non-blocking) mode, and offers line-oriented helpers
// (Print, Puts, Getc, ReadLine/Gets) on top of the raw byte stream.
//
//	w, err := fifo.New("/tmp/my-fifo", fifo.Writer, fifo.NoWait)
//	...
//	r, err := fifo.Open("/tmp/my-fifo") // Reader, NoWait
//	...
//	w.Puts("hello")
//	line, err := r.Gets() // "hello\n"
package fifo
