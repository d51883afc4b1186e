// Package grid models the two-level Antarctic territory tiling scheme.
//
// The scheme tiles each UTM zone with coarse L1 tiles of 36 km edge
// length, each subdivided into a 6×6 grid of fine L2 tiles of 6 km edge
// length. Both levels use the same 600×600 pixel raster per tile, giving
// 60 m/px at L1 and 10 m/px at L2.
//
// Tiles are identified by strings of the form "43S_L1_0006_0114": UTM
// zone and hemisphere, grid level, then zero-padded column and row
// indices counted from the zone's grid origin.
//
// All geometry values are literal design constants of the scheme, not
// derived from geodetic computation.
package grid
