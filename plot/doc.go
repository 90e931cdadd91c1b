// Package plot renders solver progress as a gnuplot command stream.
//
// A Gnuplot value is a tsp.Observer: attach it to tsp.Options.Observer and
// every accepted greedy edge, visited or inserted city and applied 2-opt
// reversal becomes a plot frame. Frames carry their data inline ('-'), so
// nothing is written to disk besides the optional animated GIF that gnuplot
// itself produces.
//
// The writer is usually the stdin pipe of a `gnuplot -persist` process, but
// any io.Writer works, which keeps the package testable with a bytes.Buffer.
package plot
