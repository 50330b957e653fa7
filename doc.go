// Package fractex computes point samples for two-dimensional fractals.
//
// The engine covers two families: escape-time iterations sampled over a
// rectangular grid (Mandelbrot, Julia, Burning Ship, Newton, Phoenix,
// Tricorn, Buffalo, Magnet, Multibrot, Lyapunov) and map iterations
// producing point clouds (Barnsley fern, Sierpinski triangle,
// Gingerbreadman map). Samples are handed to the caller as an ordered
// sequence of coordinate records; plotting, color mapping and output
// formatting are the caller's concern.
package fractex
