package stock

// SplitChunks divide una cantidad en grupos de a lo sumo chunkSize (servicio de
// dominio puro). Devuelve floor(q/c) grupos de tamaño c y un resto si lo hay;
// los grupos suman exactamente quantity. Cantidad cero o negativa => nil.
func SplitChunks(chunkSize, quantity int) []int {
	if chunkSize <= 0 || quantity <= 0 {
		return nil
	}
	full := quantity / chunkSize
	rest := quantity % chunkSize
	chunks := make([]int, 0, full+1)
	for i := 0; i < full; i++ {
		chunks = append(chunks, chunkSize)
	}
	if rest > 0 {
		chunks = append(chunks, rest)
	}
	return chunks
}
