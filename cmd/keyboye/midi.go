package main

import (
	"fmt"
	"io"

	"github.com/gomidi/connect"
)

type outWriter struct {
	out connect.Out
}

func (w *outWriter) Write(b []byte) (int, error) {
	return len(b), w.out.Send(b)
}

func portWriter(out connect.Out) io.Writer {
	return &outWriter{out}
}

func PrintPort(w io.Writer, port connect.Port) {
	fmt.Fprintf(w, "[%v] %s\n", port.Number(), port.String())
}

func PrintInPorts(w io.Writer, ports []connect.In) {
	fmt.Fprintf(w, "MIDI IN Ports\n")
	for _, port := range ports {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}

func PrintOutPorts(w io.Writer, ports []connect.Out) {
	fmt.Fprintf(w, "MIDI OUT Ports\n")
	for _, port := range ports {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}
