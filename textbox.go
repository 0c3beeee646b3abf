package easel

const defaultFontSize = 12

// TextboxOptions configures NewTextbox. The zero value gives black 12px
// text in DefaultFont on a transparent background.
type TextboxOptions struct {
	TextColor Color   // zero value means Black
	Font      *Font   // takes precedence over FontName
	FontName  string  // looked up with FontByName
	FontSize  float64 // pixels; 0 means 12
	FillColor Color   // zero value means transparent
}

// Textbox is a single line of text centered in a fixed box.
type Textbox struct {
	bitmap
	msg       string
	textColor Color
	fillColor Color
	font      *Font
	size      float64
}

// NewTextbox creates a textbox of the given size showing msg.
func NewTextbox(width, height int, msg string, opts TextboxOptions) *Textbox {
	tb := &Textbox{
		bitmap:    bitmap{w: width, h: height},
		msg:       msg,
		textColor: opts.TextColor,
		fillColor: opts.FillColor,
		font:      opts.Font,
		size:      opts.FontSize,
	}
	if tb.textColor == (Color{}) {
		tb.textColor = Black
	}
	if tb.font == nil {
		tb.font = FontByName(opts.FontName)
	}
	if tb.size <= 0 {
		tb.size = defaultFontSize
	}
	return tb
}

// Message returns the displayed text.
func (tb *Textbox) Message() string { return tb.msg }

// TextColor returns the text color.
func (tb *Textbox) TextColor() Color { return tb.textColor }

// FillColor returns the background color.
func (tb *Textbox) FillColor() Color { return tb.fillColor }

// Font returns the font the text is set in.
func (tb *Textbox) Font() *Font { return tb.font }

// FontSize returns the text size in pixels.
func (tb *Textbox) FontSize() float64 { return tb.size }

// ChangeMessage replaces the text and re-renders. The box keeps its size;
// text wider than the box is clipped on both sides.
func (tb *Textbox) ChangeMessage(msg string) {
	tb.msg = msg
	tb.Render()
}

// ChangeTextColor sets the text color and re-renders.
func (tb *Textbox) ChangeTextColor(c Color) {
	tb.textColor = c
	tb.Render()
}

// ChangeFillColor sets the background color and re-renders. Transparent
// removes the background.
func (tb *Textbox) ChangeFillColor(c Color) {
	tb.fillColor = c
	tb.Render()
}

// Covers reports whether 0 <= x < width and 0 <= y < height.
func (tb *Textbox) Covers(x, y int) bool {
	return tb.containsRect(x, y)
}

// Render fills the background and draws the message centered with
// truncating half offsets.
func (tb *Textbox) Render() {
	if tb.surf == nil {
		return
	}
	if tb.fillColor.IsTransparent() {
		tb.surf.Clear()
	} else {
		tb.surf.Fill(tb.fillColor)
	}
	tw, th := tb.surf.MeasureText(tb.msg, tb.font, tb.size)
	x, y := textOrigin(tb.w, tb.h, tw, th)
	tb.surf.DrawText(tb.msg, tb.font, tb.size, x, y, tb.textColor)
}

// textOrigin centers a tw x th block in a w x h box.
func textOrigin(w, h, tw, th int) (int, int) {
	return w/2 - tw/2, h/2 - th/2
}
