package format

type (
	LayoutType      uint8
	CompressionType uint8
)

const (
	// Layout3D writes one row of grid[0] values per text line.
	Layout3D LayoutType = 0x1
	// Layout2D joins each z-slice into one line of grid[0]*grid[1] values.
	// It changes line breaking only, never the values or the header.
	Layout2D LayoutType = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

func (l LayoutType) String() string {
	switch l {
	case Layout3D:
		return "3D"
	case Layout2D:
		return "2D"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
