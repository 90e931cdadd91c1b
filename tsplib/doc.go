// Package tsplib reads Euclidean TSPLIB instances (the NODE_COORD_SECTION
// form used by berlin52, eil76, kroA100, …) into tsp.City slices.
//
// Only the header fields and the coordinate section are interpreted:
//
//	NAME : berlin52
//	TYPE : TSP
//	DIMENSION : 52
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 565.0 575.0
//	...
//	EOF
//
// Node ids are validated as integers but otherwise ignored: cities keep their
// file order, which is the city index used by every constructor. Other
// sections (e.g. DISPLAY_DATA_SECTION) end the coordinate block and are skipped.
package tsplib
