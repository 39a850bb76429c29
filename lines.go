// Copyright 2016 Aleksandr Demakin. All rights reserved.

package fifo

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const newline = '\n'

// Print writes the string form of each value without separators,
// then a newline, and flushes once. The record is passed to the fifo in a single write.
//
//	w.Print("Hello!")
//	w.Print("Multiple", "Arguments")
//	r.Gets() // "Hello!\n"
//	r.Gets() // "MultipleArguments\n"
func (f *Fifo) Print(values ...interface{}) error {
	var record bytes.Buffer
	for _, v := range values {
		record.WriteString(stringify(v))
	}
	record.WriteByte(newline)
	if _, err := f.Write(record.Bytes()); err != nil {
		return err
	}
	return f.Flush()
}

// Puts writes each value as a separate line and flushes after every line.
// A single trailing newline of a value is not duplicated.
//
//	w.Puts("1", "2\n")
//	r.Gets() // "1\n"
//	r.Gets() // "2\n"
func (f *Fifo) Puts(values ...interface{}) error {
	for _, v := range values {
		line := strings.TrimSuffix(stringify(v), "\n") + "\n"
		if _, err := f.Write([]byte(line)); err != nil {
			return err
		}
		if err := f.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Getc reads exactly one byte.
func (f *Fifo) Getc() (byte, error) {
	var b [1]byte
	n, err := f.Read(b[:])
	if n == 1 {
		return b[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

// ReadLine reads one byte at a time until it reads a newline and returns the line
// including the newline. Bytes after the newline stay in the fifo.
// In Wait mode it blocks until a newline arrives, which may never happen;
// use Await to bound the wait. On error the partially read line is returned along with it.
func (f *Fifo) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		c, err := f.Getc()
		if err != nil {
			return line.String(), err
		}
		line.WriteByte(c)
		if c == newline {
			return line.String(), nil
		}
	}
}

// Gets is the same as ReadLine.
func (f *Fifo) Gets() (string, error) {
	return f.ReadLine()
}

func stringify(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	case fmt.Stringer:
		return value.String()
	case error:
		return value.Error()
	default:
		return fmt.Sprint(value)
	}
}
