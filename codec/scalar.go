package codec

// Scalar is the set of element types a compac array can hold.
type Scalar interface {
	~float32 | ~float64
}
