// Package raster reads single-band climate grids and samples them at
// geographic coordinates.
//
// Grids follow GDAL conventions: values are stored row-major starting at the
// top-left cell, and a six-term [GeoTransform] maps (col, row) to (x, y):
//
//	x = gt[0] + col*gt[1] + row*gt[2]
//	y = gt[3] + col*gt[4] + row*gt[5]
//
// Sampling inverts the transform, floors the fractional position to a cell
// and bounds-checks it. A point outside the grid yields a
// [CoordinateOutOfRangeError] instead of an index panic.
package raster
