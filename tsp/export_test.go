package tsp

// Internal hooks for black-box tests in package tsp_test.
var (
	StitchEdges = stitchEdges
	OpenLength  = openLength
)
