// Package domain holds the core types of the detection pipeline: samples,
// detection requests and results, ranked classifier candidates, and the
// sampling constants shared by the CLI and the reader.
package domain
