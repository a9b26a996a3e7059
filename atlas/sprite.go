package atlas

import "image"

// Sprite references a sub-rectangle of an atlas texture. It is cheap to copy
// and comparable.
type Sprite struct {
	Texture    *Texture
	Coords     image.Rectangle
	Generation uint64
}

// Size returns the sprite's pixel dimensions.
func (s Sprite) Size() image.Point {
	return s.Coords.Size()
}

// UV returns the normalized texture coordinates of the sprite corners.
func (s Sprite) UV() (u0, v0, u1, v1 float32) {
	if s.Texture == nil {
		return 0, 0, 0, 0
	}
	side := float32(s.Texture.Size())
	return float32(s.Coords.Min.X) / side,
		float32(s.Coords.Min.Y) / side,
		float32(s.Coords.Max.X) / side,
		float32(s.Coords.Max.Y) / side
}
