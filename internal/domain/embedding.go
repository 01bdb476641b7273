package domain

import "time"

// Payload описывает дополнительную информацию вектора
type Payload map[string]any

// Embedding представляет вектор текстового описания одного товара
type Embedding struct {
	ID      string
	Vector  []float32
	Payload Payload
}

func NewEmbedding(id string, vector []float32, payload Payload) *Embedding {
	return &Embedding{
		ID:      id,
		Vector:  vector,
		Payload: payload,
	}
}

func NewPayload(productID int64, productName string, modelName string) Payload {
	return Payload{
		"product_id":   productID,
		"product_name": productName,
		"created_at":   time.Now().UTC().UnixNano(),
		"model_name":   modelName,
	}
}
