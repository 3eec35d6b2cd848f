package multikey

// Ed25519 public keys are already a single compact coordinate, so there is nothing to compress.
type eddsaCodec struct{}

var _ pointCodec = eddsaCodec{}

func (eddsaCodec) compress(x, _ []byte) ([]byte, error) {
	return x, nil
}

func (eddsaCodec) decompress(data []byte) ([]byte, []byte, error) {
	return data, nil, nil
}
