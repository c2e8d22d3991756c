package array

import "github.com/compac/compac/codec"

// blockExtent returns ceil(n/4), the number of 4-wide blocks needed to
// cover a logical extent of n.
func blockExtent(n uint32) int {
	return int((n + 3) / 4)
}

// usedInLastBlock returns the used extent (1..4) of the last block along an
// axis of logical size n split into nBlocks blocks of 4.
func usedInLastBlock(n uint32, nBlocks int) int {
	used := int(n) - (nBlocks-1)*4
	if used <= 0 {
		used = 4
	}

	return used
}

// shapeTable1D returns the per-block shape codes for a 1D array, or nil if
// nx is a multiple of 4 (every block full, so no table is needed).
func shapeTable1D(nx uint32, bx int) []uint8 {
	if nx%4 == 0 {
		return nil
	}

	table := make([]uint8, bx)
	table[bx-1] = codec.ShapeCode1D(usedInLastBlock(nx, bx))

	return table
}

// shapeTable2D returns the per-block shape codes for a 2D array in
// block-major (y major, x minor) order, or nil if both extents are
// multiples of 4.
func shapeTable2D(nx, ny uint32, bx, by int) []uint8 {
	if nx%4 == 0 && ny%4 == 0 {
		return nil
	}

	lastX := usedInLastBlock(nx, bx)
	lastY := usedInLastBlock(ny, by)
	table := make([]uint8, bx*by)
	for j := 0; j < by; j++ {
		usedY := 4
		if j == by-1 {
			usedY = lastY
		}
		for i := 0; i < bx; i++ {
			usedX := 4
			if i == bx-1 {
				usedX = lastX
			}
			if usedX == 4 && usedY == 4 {
				continue
			}
			table[j*bx+i] = codec.ShapeCode2D(usedX, usedY)
		}
	}

	return table
}

// shapeTable3D returns the per-block shape codes for a 3D array in
// block-major (z, y, x) order, or nil if all three extents are multiples
// of 4.
func shapeTable3D(nx, ny, nz uint32, bx, by, bz int) []uint8 {
	if nx%4 == 0 && ny%4 == 0 && nz%4 == 0 {
		return nil
	}

	lastX := usedInLastBlock(nx, bx)
	lastY := usedInLastBlock(ny, by)
	lastZ := usedInLastBlock(nz, bz)
	table := make([]uint8, bx*by*bz)
	for k := 0; k < bz; k++ {
		usedZ := 4
		if k == bz-1 {
			usedZ = lastZ
		}
		for j := 0; j < by; j++ {
			usedY := 4
			if j == by-1 {
				usedY = lastY
			}
			for i := 0; i < bx; i++ {
				usedX := 4
				if i == bx-1 {
					usedX = lastX
				}
				if usedX == 4 && usedY == 4 && usedZ == 4 {
					continue
				}
				table[(k*by+j)*bx+i] = codec.ShapeCode3D(usedX, usedY, usedZ)
			}
		}
	}

	return table
}

// blockLane1D maps a logical x coordinate to its block index and lane
// (position within the 4-wide tile).
func blockLane1D(i int) (block, lane int) {
	return i / 4, i % 4
}

// blockLane2D maps (x,y) to its block index (y major, x minor over blocks)
// and lane (y major, x minor within the tile).
func blockLane2D(i, j, bx int) (block, lane int) {
	bi, li := i/4, i%4
	bj, lj := j/4, j%4

	return bj*bx + bi, lj*4 + li
}

// blockLane3D maps (x,y,z) to its block index (z,y,x order over blocks) and
// lane (z,y,x order within the tile).
func blockLane3D(i, j, k, bx, by int) (block, lane int) {
	bi, li := i/4, i%4
	bj, lj := j/4, j%4
	bk, lk := k/4, k%4

	return (bk*by+bj)*bx + bi, lk*16 + lj*4 + li
}
