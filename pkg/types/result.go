// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ResultKind classifies the outcome of a tool call.
type ResultKind string

const (
	// ResultOK carries the tool's report.
	ResultOK ResultKind = "ok"

	// ResultRejected carries an explanation of why the input was not
	// processed (too short, empty query).
	ResultRejected ResultKind = "rejected"

	// ResultError carries a diagnostic starting with "Error " for an
	// unexpected failure during report assembly.
	ResultError ResultKind = "error"
)

// Result is the uniform return value of every tool operation. Tools never
// return a Go error or panic to their callers; the outcome is always text.
type Result struct {
	Kind ResultKind `json:"kind" yaml:"kind"`
	Text string     `json:"text" yaml:"text"`
}

// OK wraps a successful report.
func OK(text string) Result { return Result{Kind: ResultOK, Text: text} }

// Rejected wraps an input validation message.
func Rejected(text string) Result { return Result{Kind: ResultRejected, Text: text} }

// Errorf builds an error Result. The message must begin with "Error ".
func Errorf(format string, args ...any) Result {
	return Result{Kind: ResultError, Text: fmt.Sprintf(format, args...)}
}

// Failed reports whether the Result is of kind error.
func (r Result) Failed() bool { return r.Kind == ResultError }

// String returns the Result text.
func (r Result) String() string { return r.Text }

// Guard runs build and converts a panic into an error Result whose text is
// "<prefix>: <panic value>". prefix must begin with "Error ".
func Guard(prefix string, build func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Errorf("%s: %v", prefix, r)
		}
	}()
	return build()
}
