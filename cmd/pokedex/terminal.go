// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminal is the prompt, alert and overlay surface of the shell.
type terminal struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func newTerminal(in io.Reader, out, errOut io.Writer) *terminal {
	return &terminal{in: bufio.NewReader(in), out: out, errOut: errOut}
}

// readLine returns the next trimmed line and false at end of input.
func (term *terminal) readLine() (string, bool) {
	line, err := term.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// ask prompts for a value. An empty answer keeps current.
func (term *terminal) ask(label, current string) string {
	if current != "" {
		fmt.Fprintf(term.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(term.out, "%s: ", label)
	}
	answer, _ := term.readLine()
	if answer == "" {
		return current
	}
	return answer
}

func (term *terminal) printf(format string, args ...any) {
	fmt.Fprintf(term.out, format, args...)
}

func (term *terminal) Confirm(prompt string) bool {
	fmt.Fprintf(term.out, "%s [y/N] ", prompt)
	answer, _ := term.readLine()
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func (term *terminal) Alert(message string) {
	fmt.Fprintf(term.errOut, "! %s\n", message)
}

func (term *terminal) Open(name string) {
	fmt.Fprintf(term.out, "== %s ==\n", name)
}

func (term *terminal) Close() {
	fmt.Fprintln(term.out, "== saved ==")
}
