// Package atlas packs small RGBA bitmaps into one square texture.
//
// An [Atlas] hands out [Sprite] values: sub-rectangles of its [Texture]
// tagged with the atlas generation they were allocated in. [Atlas.Clear]
// discards every allocation and starts a new generation, so sprites issued
// before a clear must not be used afterwards ([Atlas.IsLive] reports this).
//
// The texture lives in CPU memory. A GPU backend creates a texture from
// [Texture.Descriptor] and uploads [Texture.DirtyRect] whenever it is not
// empty, calling [Texture.MarkClean] afterwards.
//
// An Atlas is not safe for concurrent use.
package atlas
