package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithPageSize sets the initial viewport size.
func WithPageSize(width, height int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.pageWidth = width
		}
		if height > 0 {
			b.pageHeight = height
		}
	}
}
