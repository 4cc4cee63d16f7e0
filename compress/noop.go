package compress

// NoOpCodec passes payloads through unchanged. Used when the snapshot is
// small enough that compression overhead outweighs the saving.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// Compress returns the input unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
