// Command glyphsheet fills a glyph cache from a line of text, a set of
// decorations and an image, then writes the resulting atlas to a PNG file.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/gogpu/glyphcache"
	"github.com/gogpu/glyphcache/font"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	glyphcache.SetLogger(libraryLogger(log))

	if err := run(cfg, log); err != nil {
		log.Fatal("glyphsheet failed", zap.Error(err))
	}
}

func run(cfg *config, log *zap.Logger) error {
	overflow, err := glyphcache.ParseSquareGlyphOverflow(cfg.Overflow)
	if err != nil {
		return fmt.Errorf("overflow %q: %w", cfg.Overflow, err)
	}

	fonts, err := font.NewConfiguration(cfg.FontSize, font.DefaultSources()...)
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}
	regular := font.NewTextStyle("Go Mono")
	handle, err := fonts.ResolveFont(&regular)
	if err != nil {
		return fmt.Errorf("resolve font: %w", err)
	}
	metrics := glyphcache.NewRenderMetrics(handle.Metrics())
	log.Info("Fonts loaded",
		zap.Int("sources", fonts.Len()),
		zap.Float64("size", fonts.PixelSize()),
		zap.Int("cell_width", metrics.CellWidth),
		zap.Int("cell_height", metrics.CellHeight))

	gc, err := glyphcache.NewInMemory(cfg.AtlasSize, fonts, metrics,
		glyphcache.WithSquareGlyphOverflow(overflow),
		glyphcache.WithImageCacheSize(cfg.ImageCacheSize))
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}

	shaper := font.NewShaper(fonts)
	for _, style := range []font.TextStyle{regular, regular.Bold(), regular.Italic(), regular.Bold().Italic()} {
		if err := cacheText(gc, shaper, cfg.Text, &style); err != nil {
			return err
		}
	}

	if err := cacheLines(gc); err != nil {
		return err
	}

	data, err := imageData(cfg.ImagePath)
	if err != nil {
		return err
	}
	img := glyphcache.NewImageData(data)
	sprite, due, err := gc.ResolveImage(img, 1)
	if err != nil {
		return fmt.Errorf("cache image: %w", err)
	}
	log.Info("Image cached",
		zap.Stringer("id", img.ID()),
		zap.Stringer("coords", sprite.Coords),
		zap.Bool("animated", !due.IsZero()))
	if state, ok := gc.ImageState(img.ID()); ok {
		for range state.FrameCount() - 1 {
			if _, due, err = gc.ResolveImage(img, 1); err != nil {
				return fmt.Errorf("cache image frame: %w", err)
			}
			time.Sleep(time.Until(due))
		}
		log.Info("Animation frames cached", zap.Int("frames", state.FrameCount()))
	}

	a, _ := gc.Atlas()
	desc := a.Texture().Descriptor()
	st := gc.Stats()
	log.Info("Atlas filled",
		zap.String("label", desc.Label),
		zap.Uint32("size", desc.Size.Width),
		zap.Int("sprites", a.Len()),
		zap.Float64("utilization", a.Utilization()),
		zap.Int("glyphs", st.Glyphs),
		zap.Int("custom_glyphs", st.CustomGlyphs),
		zap.Int("lines", st.Lines),
		zap.Int("image_frames", st.ImageFrames))

	return writePNG(cfg.Output, a.Texture().Image())
}

// cacheText resolves every cell of text: block and box-drawing cells as
// custom glyphs, everything else through the shaper.
func cacheText(gc *glyphcache.GlyphCache, shaper *font.Shaper, text string, style *font.TextStyle) error {
	cells := font.SplitCells(text)
	blankAfter := make(map[int]bool, len(cells))
	for i, cell := range cells {
		blankAfter[cell.Offset] = i+1 < len(cells) && cells[i+1].Text == " "
		if key, ok := glyphcache.CustomGlyphFromCell(cell.Text); ok {
			if _, err := gc.ResolveCustomGlyph(key); err != nil {
				return fmt.Errorf("custom glyph %q: %w", cell.Text, err)
			}
		}
	}

	glyphs, err := shaper.Shape(text, style)
	if err != nil {
		return fmt.Errorf("shape: %w", err)
	}
	for i := range glyphs {
		if _, err := gc.ResolveGlyph(&glyphs[i], style, blankAfter[glyphs[i].Cluster]); err != nil {
			return err
		}
	}
	return nil
}

func cacheLines(gc *glyphcache.GlyphCache) error {
	underlines := []glyphcache.Underline{
		glyphcache.UnderlineNone,
		glyphcache.UnderlineSingle,
		glyphcache.UnderlineDouble,
		glyphcache.UnderlineCurly,
		glyphcache.UnderlineDotted,
		glyphcache.UnderlineDashed,
	}
	for _, u := range underlines {
		for _, decorated := range []bool{false, true} {
			if _, err := gc.ResolveLineSprite(decorated, decorated, u, decorated); err != nil {
				return fmt.Errorf("line sprite %v: %w", u, err)
			}
		}
	}
	return nil
}

// imageData reads path, or generates a three frame animation when path is
// empty.
func imageData(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		return data, nil
	}

	palette := color.Palette{
		color.Transparent,
		color.RGBA{0xe0, 0x40, 0x40, 0xff},
		color.RGBA{0x40, 0xc0, 0x40, 0xff},
		color.RGBA{0x40, 0x60, 0xe0, 0xff},
	}
	const side = 24
	anim := &gif.GIF{Config: image.Config{Width: side, Height: side, ColorModel: palette}}
	for frame := range 3 {
		pm := image.NewPaletted(image.Rect(0, 0, side, side), palette)
		for y := range side {
			for x := range side {
				if (x/8+y/8)%3 == frame {
					pm.SetColorIndex(x, y, uint8(frame+1))
				}
			}
		}
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, 2)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("encode animation: %w", err)
	}
	return buf.Bytes(), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}
