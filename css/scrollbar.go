package css

import (
	"fmt"
	"reflect"
	"strings"
)

// ScrollbarInfo describes the look of one scrollbar.
type ScrollbarInfo struct {
	Width        LayoutWidth
	PaddingLeft  LayoutPadding
	PaddingRight LayoutPadding
	Track        StyleBackgroundContent
	Thumb        StyleBackgroundContent
	Button       StyleBackgroundContent
	Corner       StyleBackgroundContent
	Resizer      StyleBackgroundContent
}

// DefaultScrollbarInfo is a 17px wide scrollbar in light grey.
func DefaultScrollbarInfo() ScrollbarInfo {
	return ScrollbarInfo{
		Width:        ConstPxOf[LayoutWidth](17),
		PaddingLeft:  ConstPxOf[LayoutPadding](2),
		PaddingRight: ConstPxOf[LayoutPadding](2),
		Track:        BackgroundOfColor(RGB(241, 241, 241)),
		Thumb:        BackgroundOfColor(RGB(193, 193, 193)),
		Button:       BackgroundOfColor(RGB(163, 163, 163)),
		Corner:       DefaultBackgroundContent(),
		Resizer:      DefaultBackgroundContent(),
	}
}

// DefaultBackgroundContent is a transparent background.
func DefaultBackgroundContent() StyleBackgroundContent {
	return BackgroundOfColor(Transparent)
}

// ScaleForDPI scales width and paddings.
func (s ScrollbarInfo) ScaleForDPI(factor float32) ScrollbarInfo {
	s.Width = wrapPixel[LayoutWidth](pixelOf(s.Width).ScaleForDPI(factor))
	s.PaddingLeft = wrapPixel[LayoutPadding](pixelOf(s.PaddingLeft).ScaleForDPI(factor))
	s.PaddingRight = wrapPixel[LayoutPadding](pixelOf(s.PaddingRight).ScaleForDPI(factor))
	return s
}

// String formats the scrollbar as 'width padding track thumb'. Only colored
// tracks and thumbs survive a round-trip through ParseScrollbarInfo.
func (s ScrollbarInfo) String() string {
	return fmt.Sprintf("%s %s %s %s", s.Width.Inner, s.PaddingLeft.Inner, s.Track, s.Thumb)
}

// ScrollbarStyle is the type for the property "-azul-scrollbar-style".
type ScrollbarStyle struct {
	Horizontal ScrollbarInfo
	Vertical   ScrollbarInfo
}

// DefaultScrollbarStyle uses the default for both scrollbars.
func DefaultScrollbarStyle() ScrollbarStyle {
	return ScrollbarStyle{DefaultScrollbarInfo(), DefaultScrollbarInfo()}
}

// ScaleForDPI scales both scrollbars.
func (s ScrollbarStyle) ScaleForDPI(factor float32) ScrollbarStyle {
	return ScrollbarStyle{s.Horizontal.ScaleForDPI(factor), s.Vertical.ScaleForDPI(factor)}
}

// String formats the style. Both scrollbars are written if they differ,
// separated by a comma.
func (s ScrollbarStyle) String() string {
	if reflect.DeepEqual(s.Horizontal, s.Vertical) {
		return s.Horizontal.String()
	}
	return s.Horizontal.String() + ", " + s.Vertical.String()
}

// ParseScrollbarStyle parses 'width padding track thumb', optionally given
// twice separated by a comma for horizontal and vertical scrollbar.
func ParseScrollbarStyle(s string) (ScrollbarStyle, error) {
	parts := splitRespectingParens(s, ',')
	if len(parts) == 0 || len(parts) > 2 {
		return ScrollbarStyle{}, fmt.Errorf("%w: scrollbar style %q", ErrInvalidValue, s)
	}
	h, err := ParseScrollbarInfo(parts[0])
	if err != nil {
		return ScrollbarStyle{}, err
	}
	v := h
	if len(parts) == 2 {
		if v, err = ParseScrollbarInfo(parts[1]); err != nil {
			return ScrollbarStyle{}, err
		}
	}
	return ScrollbarStyle{Horizontal: h, Vertical: v}, nil
}

// ParseScrollbarInfo parses 'width padding track thumb'. Trailing parts
// may be omitted and keep their defaults.
func ParseScrollbarInfo(s string) (ScrollbarInfo, error) {
	info := DefaultScrollbarInfo()
	fields := splitRespectingParens(strings.TrimSpace(s), ' ')
	if len(fields) > 4 {
		return info, fmt.Errorf("%w: too many components in scrollbar %q", ErrInvalidValue, s)
	}
	for i, f := range fields {
		var err error
		switch i {
		case 0:
			var w PixelValue
			w, err = ParsePixelValue(f)
			info.Width = wrapPixel[LayoutWidth](w)
		case 1:
			var p PixelValue
			p, err = ParsePixelValue(f)
			info.PaddingLeft = wrapPixel[LayoutPadding](p)
			info.PaddingRight = info.PaddingLeft
		case 2:
			info.Track, err = ParseBackgroundContent(f)
		case 3:
			info.Thumb, err = ParseBackgroundContent(f)
		}
		if err != nil {
			return info, err
		}
	}
	return info, nil
}
