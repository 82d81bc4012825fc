package render

// Instances is the renderer-side copy of body positions, replaced wholesale every frame.
// A change in count takes the reallocating path (a body was spawned or the world was
// cleared); otherwise the existing storage is overwritten in place.
type Instances struct {
	data     []float32
	reallocs int
}

// UploadMode says which path Sync took.
type UploadMode int

const (
	// UploadNone means there was nothing to upload.
	UploadNone UploadMode = iota
	// UploadRealloc means the storage was replaced because the instance count changed.
	UploadRealloc
	// UploadInPlace means the existing storage was overwritten.
	UploadInPlace
)

func (m UploadMode) String() string {
	switch m {
	case UploadRealloc:
		return "realloc"
	case UploadInPlace:
		return "in-place"
	default:
		return "none"
	}
}

// Sync replaces the stored positions with positions ([x0, y0, x1, y1, ...]) verbatim.
func (in *Instances) Sync(positions []float32) UploadMode {
	if len(positions) != len(in.data) {
		in.data = make([]float32, len(positions))
		copy(in.data, positions)
		in.reallocs++
		if len(positions) == 0 {
			return UploadNone
		}
		return UploadRealloc
	}
	if len(positions) == 0 {
		return UploadNone
	}
	copy(in.data, positions)
	return UploadInPlace
}

// Count returns the number of (x, y) instances held.
func (in *Instances) Count() int {
	return len(in.data) / 2
}

// At returns the position of instance i.
func (in *Instances) At(i int) (x, y float32) {
	return in.data[2*i], in.data[2*i+1]
}

// Data returns the stored flat position list. The slice is owned by Instances.
func (in *Instances) Data() []float32 {
	return in.data
}

// Reallocs returns how many times Sync had to replace the storage.
func (in *Instances) Reallocs() int {
	return in.reallocs
}
