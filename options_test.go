package glyphcache

import (
	"errors"
	"testing"
	"time"
)

func TestParseSquareGlyphOverflow(t *testing.T) {
	tests := []struct {
		in      string
		want    SquareGlyphOverflow
		wantErr error
	}{
		{"never", OverflowNever, nil},
		{"Always", OverflowAlways, nil},
		{"WHENFOLLOWEDBYSPACE", OverflowWhenFollowedBySpace, nil},
		{"sometimes", OverflowNever, ErrUnknownOverflow},
	}
	for _, tt := range tests {
		got, err := ParseSquareGlyphOverflow(tt.in)
		if got != tt.want || !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseSquareGlyphOverflow(%q) = %v, %v; want %v, %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestOptions(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o options)
	}{
		{"defaults", nil, func(t *testing.T, o options) {
			if o.imageCacheSize != DefaultImageCacheSize {
				t.Errorf("imageCacheSize = %d, want %d", o.imageCacheSize, DefaultImageCacheSize)
			}
			if o.overflow != OverflowNever {
				t.Errorf("overflow = %v, want %v", o.overflow, OverflowNever)
			}
		}},
		{"image cache size", []Option{WithImageCacheSize(64)}, func(t *testing.T, o options) {
			if o.imageCacheSize != 64 {
				t.Errorf("imageCacheSize = %d, want 64", o.imageCacheSize)
			}
		}},
		{"non-positive size ignored", []Option{WithImageCacheSize(0)}, func(t *testing.T, o options) {
			if o.imageCacheSize != DefaultImageCacheSize {
				t.Errorf("imageCacheSize = %d, want %d", o.imageCacheSize, DefaultImageCacheSize)
			}
		}},
		{"clock", []Option{WithClock(func() time.Time { return fixed })}, func(t *testing.T, o options) {
			if got := o.now(); !got.Equal(fixed) {
				t.Errorf("now() = %v, want %v", got, fixed)
			}
		}},
		{"nil clock ignored", []Option{WithClock(nil)}, func(t *testing.T, o options) {
			if o.now == nil {
				t.Error("now = nil")
			}
		}},
		{"overflow", []Option{WithSquareGlyphOverflow(OverflowAlways)}, func(t *testing.T, o options) {
			if o.overflow != OverflowAlways {
				t.Errorf("overflow = %v, want %v", o.overflow, OverflowAlways)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}

func TestNewInMemoryRejectsBadSize(t *testing.T) {
	if _, err := NewInMemory(100, &fakeResolver{handle: newFakeHandle()}, testRenderMetrics); err == nil {
		t.Error("NewInMemory(100) error = nil, want size error")
	}
}
