package gamemath

// ResolveCollision bounces moving out of obstacle, opposite to the direction
// it was travelling in. It returns false when the two rects do not overlap.
//
// The correction starts from the integer-truncated position of moving and
// steps one pixel at a time until the rects are clear on the axis of motion.
// The other axis keeps its truncated value, which drops any sub-pixel offset.
func ResolveCollision(moving, obstacle Rect, dir Direction) (x, y float64, ok bool) {
	if !Intersects(moving, obstacle) {
		return 0, 0, false
	}

	newX := int(moving.X)
	newY := int(moving.Y)
	width := int(moving.W)
	height := int(moving.H)
	left := int(obstacle.X)
	top := int(obstacle.Y)

	switch dir {
	case North:
		for newY < top+int(obstacle.H) {
			newY++
		}
	case East:
		for newX+width > left {
			newX--
		}
	case South:
		for newY+height > top {
			newY--
		}
	case West:
		for newX < left+int(obstacle.W) {
			newX++
		}
	}

	return float64(newX), float64(newY), true
}
